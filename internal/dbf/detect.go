package dbf

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// detectSampleSize is the byte prefix sampled for charset detection.
const detectSampleSize = 10000

// fallbackCharset is the legacy default used when detection is
// inconclusive; the historical CCAM distribution uses code page 850.
const fallbackCharset = "cp850"

// charsetTable maps detector charset names to text encodings. Names the
// detector can emit for this dataset; anything else falls back to cp850.
var charsetTable = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"ibm850":       charmap.CodePage850,
	"cp850":        charmap.CodePage850,
	"ibm437":       charmap.CodePage437,
}

// DetectEncoding samples the first bytes of the file and guesses its text
// encoding. Inconclusive detection is not an error: the legacy default is
// returned and a notice logged. The returned name is for logging only.
func DetectEncoding(path string) (encoding.Encoding, string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Warn("Could not sample file for encoding detection, using default",
			slog.String("file", path),
			slog.String("default", fallbackCharset),
			slog.String("error", err.Error()))
		return charmap.CodePage850, fallbackCharset
	}
	defer file.Close()

	sample := make([]byte, detectSampleSize)
	n, err := io.ReadFull(file, sample)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		slog.Warn("Could not read encoding sample, using default",
			slog.String("file", path),
			slog.String("default", fallbackCharset),
			slog.String("error", err.Error()))
		return charmap.CodePage850, fallbackCharset
	}

	return detectFromSample(path, sample[:n])
}

func detectFromSample(path string, sample []byte) (encoding.Encoding, string) {
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		slog.Info("Encoding not detected, using default",
			slog.String("file", path),
			slog.String("default", fallbackCharset))
		return charmap.CodePage850, fallbackCharset
	}

	name := strings.ToLower(result.Charset)
	enc, ok := charsetTable[name]
	if !ok {
		slog.Info("Unsupported charset detected, using default",
			slog.String("file", path),
			slog.String("detected", result.Charset),
			slog.String("default", fallbackCharset))
		return charmap.CodePage850, fallbackCharset
	}

	slog.Info("Detected file encoding",
		slog.String("file", path),
		slog.String("charset", name),
		slog.Int("confidence", result.Confidence))

	return enc, name
}
