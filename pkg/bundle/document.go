package bundle

import (
	"encoding/xml"
	"path/filepath"

	"go.uber.org/zap"
)

// Document is the root of the codebase XML structure.
type Document struct {
	XMLName xml.Name     `xml:"codebase"`
	Files   []FileRecord `xml:"file"`
}

// FileRecord is the per-file unit embedded in the document. The struct field
// order matches the serialized element order: filename, filepath, contents.
type FileRecord struct {
	Filename string `xml:"filename"`
	Filepath string `xml:"filepath"`
	Contents string `xml:"contents"`
}

// BuildDocument creates the codebase document for the given resolved paths,
// one record per path in the given order. A path that cannot be read as
// UTF-8 text gets its error message embedded as the record contents; a
// single unreadable file never aborts the run.
func BuildDocument(paths []string, logger *zap.Logger) Document {
	doc := Document{Files: make([]FileRecord, 0, len(paths))}

	for _, path := range paths {
		doc.Files = append(doc.Files, FileRecord{
			Filename: filepath.Base(path),
			Filepath: path,
			Contents: ReadContents(path, logger),
		})
	}

	return doc
}
