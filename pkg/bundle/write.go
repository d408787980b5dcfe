package bundle

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// RenderDocument serializes the document as two-space-indented XML preceded
// by the standard XML declaration and followed by a trailing newline. The
// whole document is rendered in memory; nothing touches disk here.
//
// Newlines and tabs inside file contents stay literal so the document
// remains readable. The encoder escapes them as character references, and a
// literal "&#xA;" in source text marshals as "&amp;#xA;", so the
// replacements below can only revert the encoder's own escapes.
func RenderDocument(doc Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	body = bytes.ReplaceAll(body, []byte("&#xA;"), []byte("\n"))
	body = bytes.ReplaceAll(body, []byte("&#x9;"), []byte("\t"))

	rendered := make([]byte, 0, len(xml.Header)+len(body)+1)
	rendered = append(rendered, xml.Header...)
	rendered = append(rendered, body...)
	rendered = append(rendered, '\n')
	return rendered, nil
}

// WriteDocument writes the rendered document to outputPath, creating missing
// parent directories first. Failures here are fatal to the run.
func WriteDocument(outputPath string, rendered []byte, logger *zap.Logger) error {
	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, rendered, 0644); err != nil {
		logger.Error("Failed to write output file", zap.String("path", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Debug("Wrote output file", zap.String("path", outputPath), zap.Int("sizeBytes", len(rendered)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
