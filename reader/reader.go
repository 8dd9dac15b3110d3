package reader

// Unsupported is returned for file formats the reader cannot decode.
// Callers treat it as empty content rather than an error.
const Unsupported = "Unsupported file format."

// Reader resolves a file path to plain text. Decode failures on supported
// formats surface as errors; unsupported extensions yield the Unsupported
// sentinel.
type Reader interface {
	Read(path string) (string, error)
}
