package glidejson

import "github.com/sirupsen/logrus"

// The package stays silent by default: logger output goes to a
// discarding logrus instance until a caller opts in with SetLogger.
// This keeps Parse/Marshal/EncodeString/Base64* purely synchronous and
// free of hidden I/O, matching the library's concurrency contract;
// only cmd/glidejson installs a real logger.
var pkgLogger = newSilentLogger()

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel + 1) // effectively silent; see SetLogger
	return l
}

// SetLogger installs the logrus.Logger used for the package's debug
// diagnostics (table initialization, Base64 rejection reasons). Pass
// nil to restore the default silent logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		pkgLogger = newSilentLogger()
		return
	}
	pkgLogger = l
}

func logTablesInitialized() {
	pkgLogger.WithFields(logrus.Fields{
		"encoderStates": numEncoderStates,
		"parserStates":  numParserStates,
	}).Debug("glidejson: tables initialized")
}
