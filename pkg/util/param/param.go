package param

import (
	"net/http"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Cleanse removes unexpected characters from an input parameter value.
// Useful before echoing caller-supplied paths into log lines.
func Cleanse(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '/' || r == '.' {
			return r
		}
		return -1
	}, name)
}

// when requesting a param, also validate it against a regexp to ensure it is what we expect
var boolRegexp = regexp.MustCompile(`^(true|false|1|0)$`)
var pathRegexp = regexp.MustCompile(`^[-/\w.]+$`)
var listRegexp = regexp.MustCompile(`^[-\w]+(,[-\w]+)*$`)
var idRegexp = regexp.MustCompile(`^[-\w]+$`)
var paramRegexp = map[string]*regexp.Regexp{
	"path":             pathRegexp,
	"roles":            listRegexp,
	"showExperimental": boolRegexp,
	"testId":           idRegexp,
	"flag":             idRegexp,
}

// SafeRead returns the value of a query parameter only if it matches the given regexp.
// this should be used to validate query parameters that are not otherwise validated.
func SafeRead(req *http.Request, name string) string {
	re, ok := paramRegexp[name]
	if !ok {
		log.Fatalf("code BUG: request for unknown param %s", name) // revive:disable-line:deep-exit
	}
	value := req.URL.Query().Get(name)
	if value == "" || re.MatchString(value) {
		return value
	}
	log.Warnf("invalid value for %s param: %q", name, value)
	return ""
}
