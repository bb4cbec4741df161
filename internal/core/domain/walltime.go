package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"go.trai.ch/zerr"
)

// WalltimeGranularity is the scheduler's minimum time resolution.
// Scaled walltimes are rounded up to this unit.
const WalltimeGranularity = time.Minute

// Walltime is a wall-clock time allocation or measurement.
// The zero value means "not reported".
type Walltime time.Duration

var walltimeRegexp = regexp.MustCompile(`^(?:(\d+)-)?(\d+):(\d+):(\d+)$`)

// ParseWalltime parses a scheduler walltime string in D-HH:MM:SS or
// HH:MM:SS form.
func ParseWalltime(s string) (Walltime, error) {
	m := walltimeRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, zerr.With(ErrInvalidWalltime, "walltime", s)
	}

	var days int
	if m[1] != "" {
		days, _ = strconv.Atoi(m[1])
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])

	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	return Walltime(d), nil
}

// Scale multiplies the walltime by m and rounds the result up to the
// scheduler granularity. An exact product is returned unchanged, so a
// multiplier of 1.0 is the identity.
func (w Walltime) Scale(m float64) Walltime {
	scaled := time.Duration(math.Ceil(float64(w) * m))
	if scaled == time.Duration(w) {
		return w
	}
	rounded := scaled.Truncate(WalltimeGranularity)
	if rounded < scaled {
		rounded += WalltimeGranularity
	}
	return Walltime(rounded)
}

// Duration returns the walltime as a time.Duration.
func (w Walltime) Duration() time.Duration {
	return time.Duration(w)
}

// String renders the walltime in D-HH:MM:SS form, omitting the day part
// when it is zero. The zero value renders as "n/a".
func (w Walltime) String() string {
	if w == 0 {
		return "n/a"
	}

	d := time.Duration(w)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	if days > 0 {
		return fmt.Sprintf("%d-%02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
