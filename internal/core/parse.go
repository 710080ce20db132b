package core

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/jask/charon/internal/models"
)

const (
	VerbExec      = "EXEC"
	VerbStopHaunt = "STOP_HAUNT"
	VerbImpact    = "IMPACT"

	DefaultSleepInterval int64 = 10
	DefaultJitterPercent int16 = 5
	DefaultTargetPort          = 9999

	// maxVerbDistance bounds how far a typo may be from a verb before no
	// suggestion is offered.
	maxVerbDistance = 2
)

// Verbs is the allow-list of task verbs the control server understands.
var Verbs = []string{VerbExec, VerbStopHaunt, VerbImpact}

func isVerb(s string) bool {
	for _, v := range Verbs {
		if s == v {
			return true
		}
	}
	return false
}

// ParseTaskInput splits a command line into a task request. A leading
// allow-listed verb becomes the command and the rest the arguments; anything
// else is sent whole as arguments to EXEC.
func ParseTaskInput(line string) models.TaskRequest {
	line = strings.TrimSpace(line)
	head, rest := splitFirstToken(line)
	if isVerb(head) {
		return models.TaskRequest{Command: head, Args: strings.TrimSpace(rest)}
	}
	return models.TaskRequest{Command: VerbExec, Args: line}
}

// SuggestVerb returns the allow-listed verb the first token of line most
// likely meant, when it is a near miss of something other than EXEC.
func SuggestVerb(line string) (string, bool) {
	head, _ := splitFirstToken(strings.TrimSpace(line))
	if head == "" || isVerb(head) {
		return "", false
	}
	upper := strings.ToUpper(head)
	best, bestDist := "", maxVerbDistance+1
	for _, v := range Verbs {
		if d := levenshtein.ComputeDistance(upper, v); d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == "" || best == VerbExec {
		return "", false
	}
	return best, true
}

func splitFirstToken(s string) (head, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// ParseGhostConfig turns the form buffers into an update. Unparsable values
// fall back to the defaults instead of failing the submit.
func ParseGhostConfig(sleep, jitter string) models.GhostConfigUpdate {
	cfg := models.GhostConfigUpdate{SleepInterval: DefaultSleepInterval, JitterPercent: DefaultJitterPercent}
	if v, err := strconv.ParseInt(strings.TrimSpace(sleep), 10, 64); err == nil {
		cfg.SleepInterval = v
	}
	if v, err := strconv.ParseInt(strings.TrimSpace(jitter), 10, 16); err == nil {
		cfg.JitterPercent = int16(v)
	}
	return cfg
}

// CoercePort parses a port buffer, falling back to DefaultTargetPort for
// anything that is not in [1, 65535].
func CoercePort(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 || v > 65535 {
		return DefaultTargetPort
	}
	return v
}
