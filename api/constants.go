package api

const (
	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755

	// MaxErrorMessageLength truncates library errors returned to clients
	MaxErrorMessageLength = 200

	// MaxMultipartMemory is kept in memory while parsing uploads; the rest spills to disk
	MaxMultipartMemory = 32 << 20

	contentTypePDF = "application/pdf"
	contentTypeZip = "application/zip"
)
