package psshell

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrNoOutput is returned when a script that must produce an object produced nothing.
var ErrNoOutput = errors.New("command returned no output")

// Result contains the information from one script execution. Script is the
// text that was sent with any secrets replaced.
type Result struct {
	Script   string
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Script joins statements into a single line. The session treats a newline
// as the end of a command so scripts are always sent as one line.
func Script(statements ...string) string {
	return strings.Join(statements, "; ")
}

// singleQuotes holds every character PowerShell accepts as a single-quote
// string delimiter.
const singleQuotes = "'\u2018\u2019\u201A\u201B"

// Quote returns s as a PowerShell string literal. Every single-quote character
// is doubled. Control characters are written as escape sequences in their own
// double-quoted segments, joined with +, so the literal never spans lines.
func Quote(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return quoteSingle(s)
	}

	var parts []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsControl(r) {
			i += size
			continue
		}
		if i > start {
			parts = append(parts, quoteSingle(s[start:i]))
		}
		parts = append(parts, controlLiteral(r))
		i += size
		start = i
	}
	if start < len(s) {
		parts = append(parts, quoteSingle(s[start:]))
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func quoteSingle(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if strings.ContainsRune(singleQuotes, r) {
			b.WriteString(s[i : i+size])
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	b.WriteByte('\'')
	return b.String()
}

func controlLiteral(r rune) string {
	switch r {
	case '\n':
		return "\"`n\""
	case '\r':
		return "\"`r\""
	case '\t':
		return "\"`t\""
	case 0:
		return "\"`0\""
	}
	return fmt.Sprintf("\"$([char]0x%X)\"", r)
}

// Bool returns the PowerShell literal for b.
func Bool(b bool) string {
	if b {
		return "$true"
	}
	return "$false"
}

// Run executes script and returns the trimmed output.
func Run(sh Shell, script string) (Result, error) {
	return run(sh, script, nil)
}

// RunRedacted is Run for scripts that carry secrets. The secrets never appear
// in the returned Result or error.
func RunRedacted(sh Shell, script string, secrets ...string) (Result, error) {
	return run(sh, script, secrets)
}

// RunJSON executes script, converts its output to a JSON array on the remote
// side and decodes it into v, which should be a pointer to a slice. A script
// producing nothing decodes to an empty slice.
func RunJSON(sh Shell, script string, v interface{}) (Result, error) {
	return runJSON(sh, script, v, nil)
}

// RunJSONRedacted is RunJSON for scripts that carry secrets.
func RunJSONRedacted(sh Shell, script string, v interface{}, secrets ...string) (Result, error) {
	return runJSON(sh, script, v, secrets)
}

func runJSON(sh Shell, script string, v interface{}, secrets []string) (Result, error) {
	res, err := run(sh, JSONScript(script), secrets)
	if err != nil {
		return res, err
	}
	body := res.Stdout
	if body == "" {
		body = "[]"
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return res, errors.Wrap(err, "decoding powershell output")
	}
	return res, nil
}

// JSONScript wraps script so its output is always serialized as a JSON array.
func JSONScript(script string) string {
	return fmt.Sprintf("ConvertTo-Json -Compress -Depth 4 -InputObject @(%s)", script)
}

func run(sh Shell, script string, secrets []string) (Result, error) {
	res := Result{Script: redact(script, secrets)}

	start := time.Now()
	stdout, stderr, err := sh.Execute(oneLine(script))
	res.Duration = time.Since(start)
	res.Stdout = strings.TrimSpace(stdout)
	res.Stderr = strings.TrimSpace(redact(stderr, secrets))

	if err != nil {
		// The shell error embeds the command text so it is only surfaced when nothing is secret.
		msg := firstLine(res.Stderr)
		if msg == "" && len(secrets) == 0 {
			msg = err.Error()
		}
		if msg == "" {
			msg = "powershell command failed"
		}
		return res, errors.New(msg)
	}
	return res, nil
}

// oneLine joins the lines of a script. Values passed through Quote never
// contain a line break so only the script structure is affected.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func redact(s string, secrets []string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		s = strings.Replace(s, Quote(secret), "'****'", -1)
		s = strings.Replace(s, secret, "****", -1)
	}
	return s
}
