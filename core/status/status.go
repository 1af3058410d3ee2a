package status

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedStatusLine indicates a status line that violates the
// "<3-digit code>" or "<3-digit code> <reason>" grammar. Parsing rejects the
// input before any state is touched.
var ErrMalformedStatusLine = errors.New("malformed status line")

// reasonPhrases maps status codes to their canonical reason phrases.
var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Request Entity Too Large",
	414: "Request-URI Too Long",
	415: "Unsupported Media Type",
	416: "Requested Range Not Satisfiable",
	417: "Expectation Failed",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	507: "Insufficient Storage",
	511: "Network Authentication Required",
}

// Phrase returns the canonical reason phrase for a status code, or the empty
// string when the code is unknown.
func Phrase(code int) string {
	return reasonPhrases[code]
}

// FormatLine renders a status line from a code and an optional reason phrase.
// The result is "<code>" when phrase is empty and "<code> <phrase>" otherwise.
func FormatLine(code int, phrase string) string {
	if phrase == "" {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code) + " " + phrase
}

// ParseLine splits a status line into its numeric code and reason phrase.
// The line must be at least 3 characters, the first 3 must be the numeric
// code, and when anything follows, the 4th character must be a single space
// separating the code from the reason. Anything else fails with
// ErrMalformedStatusLine and no partial result.
func ParseLine(line string) (int, string, error) {
	if len(line) < 3 {
		return 0, "", fmt.Errorf("%w: %q is shorter than 3 characters", ErrMalformedStatusLine, line)
	}
	if len(line) > 3 && line[3] != ' ' {
		return 0, "", fmt.Errorf("%w: %q lacks a space after the status code", ErrMalformedStatusLine, line)
	}

	code, err := strconv.Atoi(line[:3])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q does not start with a 3-digit code", ErrMalformedStatusLine, line)
	}

	var phrase string
	if len(line) > 4 {
		phrase = line[4:]
	}
	return code, phrase, nil
}
