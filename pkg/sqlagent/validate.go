package sqlagent

import (
	"fmt"
	"regexp"
	"strings"
)

// dangerousKeywords are rejected outright. The executing role is
// read-only too; this check just fails fast with a clear error.
var dangerousKeywords = []string{
	"DROP", "DELETE", "UPDATE", "INSERT", "ALTER",
	"TRUNCATE", "CREATE", "GRANT", "REVOKE", "--", "/*",
}

var (
	thinkTagRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	selectRe   = regexp.MustCompile(`(?is)(SELECT\s+.+?)(;|$)`)
)

// ExtractSQL pulls the SELECT statement out of a model response,
// stripping code fences and reasoning tags.
func ExtractSQL(response string) string {
	response = strings.TrimSpace(response)
	response = thinkTagRe.ReplaceAllString(response, "")
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```sql")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	if m := selectRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1]) + ";"
	}
	return strings.TrimSpace(response)
}

// ValidateSQL rejects anything that is not a plain SELECT.
func ValidateSQL(sql string) error {
	upper := strings.ToUpper(sql)
	for _, kw := range dangerousKeywords {
		if strings.Contains(upper, kw) {
			return fmt.Errorf("dangerous keyword detected: %s", kw)
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(upper), "SELECT") {
		return fmt.Errorf("query must start with SELECT")
	}
	return nil
}

// EnsureLimit appends a LIMIT clause when the model forgot one.
func EnsureLimit(sql string, limit int) string {
	if strings.Contains(strings.ToUpper(sql), "LIMIT") {
		return sql
	}
	return fmt.Sprintf("%s LIMIT %d;", strings.TrimSuffix(strings.TrimSpace(sql), ";"), limit)
}
