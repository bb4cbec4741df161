package report

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"go.trai.ch/zerr"
)

const notAvailable = "n/a"

const logFilePerm = 0o644

// logFileHeader names the tab-separated columns, written once when the file
// is created.
var logFileHeader = []string{
	"Target",
	"Failure",
	"ExitCode",
	"Signal",
	"Elapsed",
	"Timelimit",
	"MaxRSS",
	"ReqMem",
	"NodeList",
	"Restart",
	"NewWalltime",
	"NewMemory",
}

// FileReporter implements ports.Reporter as line-oriented structured text:
// one tab-separated record per failed target, append-or-create semantics.
type FileReporter struct {
	path string
}

// NewFileReporter creates a reporter appending to the given path.
func NewFileReporter(path string) *FileReporter {
	return &FileReporter{path: path}
}

// Emit appends one record per finding, writing the header first when the
// file does not exist yet.
func (r *FileReporter) Emit(findings []domain.Finding) error {
	_, err := os.Stat(r.path)
	fresh := errors.Is(err, fs.ErrNotExist)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	defer f.Close() //nolint:errcheck // write errors surface below

	var b strings.Builder
	if fresh {
		b.WriteString(strings.Join(logFileHeader, "\t") + "\n")
	}
	for _, finding := range findings {
		b.WriteString(strings.Join(logFileRecord(finding), "\t") + "\n")
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}

func logFileRecord(f domain.Finding) []string {
	failure := f.Kind.String()
	if f.ParseErr != nil {
		failure = "unparseable"
	}

	exitCode, signal := notAvailable, notAvailable
	elapsed, timelimit := notAvailable, notAvailable
	maxRSS, reqMem, node := notAvailable, notAvailable, notAvailable
	if f.Record != nil {
		exitCode = strconv.Itoa(f.Record.ExitCode)
		signal = strconv.Itoa(f.Record.Signal)
		elapsed = f.Record.Elapsed.String()
		timelimit = f.Record.Timelimit.String()
		maxRSS = f.Record.MaxRSS.String()
		reqMem = f.Record.ReqMem.String()
		if f.Record.NodeList != "" {
			node = f.Record.NodeList
		}
	}

	restart, newWalltime, newMemory := "", notAvailable, notAvailable
	switch {
	case f.Decision == nil:
		restart = notAvailable
	case f.Decision.Eligible:
		restart = "eligible"
		if f.Decision.Resources != nil {
			newWalltime = f.Decision.Resources.Walltime.String()
			newMemory = f.Decision.Resources.Memory.String()
		}
	default:
		restart = "ineligible"
	}

	return []string{
		f.Target.String(),
		failure,
		exitCode,
		signal,
		elapsed,
		timelimit,
		maxRSS,
		reqMem,
		node,
		restart,
		newWalltime,
		newMemory,
	}
}
