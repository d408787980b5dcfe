package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// readErrorPrefix starts every embedded error string. Downstream consumers
// rely on it to tell real contents from read failures.
const readErrorPrefix = "Error reading file: "

// ReadContents returns the UTF-8 text of the file at path. A read failure,
// or content that is not valid UTF-8, produces a literal error-message
// string in place of the contents; the caller embeds it in the document
// unchanged and the run continues.
func ReadContents(path string, logger *zap.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file contents", zap.String("path", path), zap.Error(err))
		return readErrorPrefix + err.Error()
	}

	if !utf8.Valid(data) {
		kind := mimetype.Detect(data)
		logger.Warn("File is not valid UTF-8 text",
			zap.String("path", path),
			zap.String("detectedType", kind.String()))
		return fmt.Sprintf("%s%s is not valid UTF-8 text (detected %s)", readErrorPrefix, filepath.Base(path), kind)
	}

	return string(data)
}
