package slurm

import (
	"strconv"
	"strings"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"go.trai.ch/zerr"
)

// Timelimit values that carry no usable duration.
var unboundedTimelimits = map[string]bool{
	"UNLIMITED":       true,
	"PARTITION_LIMIT": true,
}

// Parse converts raw sacct --parsable2 output into one AccountingRecord per
// job. The first line is the header; every following line is a job or a job
// step (JobID "1234", "1234.batch", "1234.extern").
//
// Step aggregation: the base job line seeds the record, MaxRSS takes the
// maximum across steps, and a step with a terminal failed state overrides a
// non-failed parent state and exit signature.
//
// A malformed line marks its job ID as unparseable and excludes the job from
// the result; it never fails the batch. Missing optional fields parse to
// zero values.
func Parse(raw string) (map[string]*domain.AccountingRecord, map[string]error) {
	records := make(map[string]*domain.AccountingRecord)
	errs := make(map[string]error)

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return records, errs
	}

	header := strings.Split(lines[0], "|")
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for lineNo, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "|")
		rawID := fieldAt(fields, index, "JobID")
		jobID, _, _ := strings.Cut(rawID, ".")
		if jobID == "" {
			// Without a job ID there is nothing to attribute the line to.
			continue
		}
		if _, bad := errs[jobID]; bad {
			continue
		}

		if len(fields) != len(header) {
			errs[jobID] = zerr.With(domain.ErrMalformedRecord, "line", lineNo+2)
			delete(records, jobID)
			continue
		}

		rec, err := parseLine(fields, index, jobID)
		if err != nil {
			errs[jobID] = zerr.With(zerr.Wrap(err, domain.ErrMalformedRecord.Error()), "line", lineNo+2)
			delete(records, jobID)
			continue
		}

		if existing, ok := records[jobID]; ok {
			if rawID == jobID {
				// Base job line arriving after its steps: it becomes the
				// record and the step aggregate folds back in.
				merge(rec, existing)
				records[jobID] = rec
			} else {
				merge(existing, rec)
			}
		} else {
			records[jobID] = rec
		}
	}

	return records, errs
}

// parseLine builds a record from one sacct line.
func parseLine(fields []string, index map[string]int, jobID string) (*domain.AccountingRecord, error) {
	exitCode, signal, err := parseExitField(fieldAt(fields, index, "ExitCode"))
	if err != nil {
		return nil, err
	}

	nodes := parseCount(fieldAt(fields, index, "NNodes"))
	cores := parseCount(fieldAt(fields, index, "NCPUS"))

	reqMem, err := parseReqMem(fieldAt(fields, index, "ReqMem"), nodes, cores)
	if err != nil {
		return nil, err
	}

	maxRSS, err := parseOptionalMemory(fieldAt(fields, index, "MaxRSS"))
	if err != nil {
		return nil, err
	}

	timelimit, err := parseOptionalWalltime(fieldAt(fields, index, "Timelimit"))
	if err != nil {
		return nil, err
	}

	elapsed, err := parseOptionalWalltime(fieldAt(fields, index, "Elapsed"))
	if err != nil {
		return nil, err
	}

	return &domain.AccountingRecord{
		JobID:     jobID,
		State:     domain.ParseJobState(fieldAt(fields, index, "State")),
		ExitCode:  exitCode,
		Signal:    signal,
		Elapsed:   elapsed,
		Timelimit: timelimit,
		ReqMem:    reqMem,
		MaxRSS:    maxRSS,
		NodeList:  fieldAt(fields, index, "NodeList"),
	}, nil
}

// merge folds a job-step record into the base record for the job.
// The step with the terminal failed state takes precedence over successful
// sibling steps; resource peaks are carried regardless.
func merge(base, step *domain.AccountingRecord) {
	if step.MaxRSS > base.MaxRSS {
		base.MaxRSS = step.MaxRSS
	}
	if base.ReqMem == 0 {
		base.ReqMem = step.ReqMem
	}
	if base.Timelimit == 0 {
		base.Timelimit = step.Timelimit
	}
	if base.NodeList == "" {
		base.NodeList = step.NodeList
	}

	if step.State.Failed() && !base.State.Failed() {
		base.State = step.State
		base.ExitCode = step.ExitCode
		base.Signal = step.Signal
	}
}

func fieldAt(fields []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// parseExitField splits Slurm's "exit:signal" pair.
func parseExitField(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	exitStr, sigStr, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, zerr.With(zerr.New("invalid exit code field"), "exit_code", s)
	}
	exitCode, err := strconv.Atoi(exitStr)
	if err != nil {
		return 0, 0, zerr.With(zerr.New("invalid exit code field"), "exit_code", s)
	}
	signal, err := strconv.Atoi(sigStr)
	if err != nil {
		return 0, 0, zerr.With(zerr.New("invalid exit code field"), "exit_code", s)
	}
	return exitCode, signal, nil
}

func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseReqMem handles Slurm's request qualifiers: a trailing "c" means
// per-CPU, a trailing "n" per-node.
func parseReqMem(s string, nodes, cores int) (domain.Memory, error) {
	if s == "" {
		return 0, nil
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "c"):
		s = strings.TrimSuffix(s, "c")
		multiplier = int64(cores)
	case strings.HasSuffix(s, "n"):
		s = strings.TrimSuffix(s, "n")
		multiplier = int64(nodes)
	}

	mem, err := domain.ParseMemory(s)
	if err != nil {
		return 0, err
	}
	return mem * domain.Memory(multiplier), nil
}

func parseOptionalMemory(s string) (domain.Memory, error) {
	if s == "" {
		return 0, nil
	}
	return domain.ParseMemory(s)
}

func parseOptionalWalltime(s string) (domain.Walltime, error) {
	if s == "" || unboundedTimelimits[strings.ToUpper(s)] {
		return 0, nil
	}
	return domain.ParseWalltime(s)
}
