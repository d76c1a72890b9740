package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pdftoolbox/config"
	"pdftoolbox/pagerange"
	pdfPkg "pdftoolbox/pdf"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handlers serves the document operations over HTTP
type Handlers struct {
	config *config.Config
	logger zerolog.Logger
}

// output describes the file a handler sends back
type output struct {
	suffix      string
	ext         string
	contentType string
	// name overrides the download name derived from the upload
	name string
}

func pdfOutput(suffix string) output {
	return output{suffix: suffix, ext: pdfPkg.PDFExtension, contentType: contentTypePDF}
}

func zipOutput(suffix string) output {
	return output{suffix: suffix, ext: ".zip", contentType: contentTypeZip}
}

func (h *Handlers) HandleInfo(c *gin.Context) {
	// Get uploaded file
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	// Validate PDF file
	if err := validatePDFFile(file, header, h.config.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Ensure temp directory exists
	if err := ensureTempDir(h.config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	// Create temp input file
	inFile := filepath.Join(h.config.TempDir, "info_"+generateUniqueID()+".pdf")
	defer os.Remove(inFile)
	if err := saveFile(file, inFile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// An upload with a PDF header that pdfcpu cannot read is unprocessable
	pages, err := pdfPkg.PageCount(inFile)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("page count failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": truncateError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":   sanitizeFilename(header.Filename),
		"pages":      pages,
		"size":       header.Size,
		"size_human": humanize.Bytes(uint64(header.Size)),
	})
}

func (h *Handlers) HandleMerge(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF files provided"})
		return
	}

	headers := form.File["pdfs"]
	if len(headers) < pdfPkg.MinMergeFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least 2 PDF files to merge."})
		return
	}

	if err := ensureTempDir(h.config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	// Clean up temp files once the response is written
	uniqueID := generateUniqueID()
	inFiles := make([]string, 0, len(headers))
	defer func() {
		for _, f := range inFiles {
			os.Remove(f)
		}
	}()

	// Save the uploaded files in request order
	for i, header := range headers {
		inFile := filepath.Join(h.config.TempDir, fmt.Sprintf("input_%s_%d.pdf", uniqueID, i))
		if err := h.saveUpload(header, inFile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", sanitizeFilename(header.Filename), err)})
			return
		}
		inFiles = append(inFiles, inFile)
	}

	outFile := filepath.Join(h.config.TempDir, "output_"+uniqueID+"_merged.pdf")
	defer os.Remove(outFile)

	// Perform merge
	result, err := pdfPkg.MergePDFs(inFiles, outFile)
	if err != nil {
		h.respondOperationError(c, err)
		return
	}

	h.logger.Info().Int("files", result.Files).Int("pages", result.Pages).Msg("merged documents")
	c.Header("X-Page-Count", strconv.Itoa(result.Pages))
	sendFile(c, outFile, pdfOutput("merged").withName(pdfPkg.DefaultMergeName))
}

func (h *Handlers) HandleSplit(c *gin.Context) {
	// Default mode is individual pages
	mode, err := pdfPkg.ParseSplitMode(c.PostForm("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if mode == pdfPkg.SplitRange {
		expression := c.PostForm("pages")
		h.handlePDFFile(c, func(inFile, outFile string) error {
			result, err := pdfPkg.SplitPageRange(inFile, outFile, expression)
			if err != nil {
				return err
			}
			h.logger.Info().Str("pages", expression).Int("extracted", result.Pages).Msg("split by range")
			c.Header("X-Page-Count", strconv.Itoa(result.Pages))
			return nil
		}, pdfOutput("split"))
		return
	}

	// Individual pages are written to a scratch directory and zipped
	h.handlePDFFile(c, func(inFile, outFile string) error {
		pagesDir := strings.TrimSuffix(outFile, filepath.Ext(outFile))
		defer os.RemoveAll(pagesDir)

		result, err := pdfPkg.SplitIndividualPages(inFile, pagesDir, uploadBaseName(c))
		if err != nil {
			return err
		}
		if err := pdfPkg.ArchiveFiles(result.Outputs, outFile); err != nil {
			return err
		}
		h.logger.Info().Int("pages", result.Pages).Msg("split into individual pages")
		c.Header("X-Page-Count", strconv.Itoa(result.Pages))
		return nil
	}, zipOutput("pages"))
}

func (h *Handlers) HandleCompress(c *gin.Context) {
	// Parse options
	var grayscale bool
	if value := c.PostForm("grayscale"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid grayscale value %q", value)})
			return
		}
		grayscale = parsed
	}

	h.handlePDFFile(c, func(inFile, outFile string) error {
		result, err := pdfPkg.CompressPDF(inFile, outFile, pdfPkg.CompressOptions{Grayscale: grayscale})
		if err != nil {
			return err
		}
		h.logger.Info().
			Int64("original_size", result.OriginalSize).
			Int64("compressed_size", result.CompressedSize).
			Float64("reduction", result.Reduction).
			Msg("compressed document")

		// Report sizes to the client
		c.Header("X-Original-Size", strconv.FormatInt(result.OriginalSize, 10))
		c.Header("X-Compressed-Size", strconv.FormatInt(result.CompressedSize, 10))
		c.Header("X-Size-Reduction", strconv.FormatFloat(result.Reduction, 'f', 2, 64))
		if result.Notice != "" {
			c.Header("X-Notice", result.Notice)
		}
		return nil
	}, pdfOutput("compressed"))
}

// handlePDFFile saves the uploaded "pdf" form file, runs operation on it
// and sends the produced file back.
func (h *Handlers) handlePDFFile(c *gin.Context, operation func(string, string) error, out output) {
	// Get uploaded file
	header, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}

	// Ensure temp directory exists
	if err := ensureTempDir(h.config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	// Create temp files, removed once the response is written
	uniqueID := generateUniqueID()
	inFile := filepath.Join(h.config.TempDir, "input_"+uniqueID+".pdf")
	outFile := filepath.Join(h.config.TempDir, "output_"+uniqueID+"_"+out.suffix+out.ext)
	defer os.Remove(inFile)
	defer os.Remove(outFile)

	// Validate and save the uploaded file
	if err := h.saveUpload(header, inFile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Perform PDF operation
	if err := operation(inFile, outFile); err != nil {
		h.respondOperationError(c, err)
		return
	}

	// Verify output file exists before sending
	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF operation did not produce output file"})
		return
	}

	sendFile(c, outFile, out)
}

// respondOperationError maps an operation error to a status and message
func (h *Handlers) respondOperationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pagerange.ErrEmptyExpression),
		errors.Is(err, pagerange.ErrMalformedToken),
		errors.Is(err, pagerange.ErrEmptyResult):
		h.logger.Warn().Err(err).Msg("invalid page range")
		c.JSON(http.StatusBadRequest, gin.H{"error": pagerange.InvalidRangeMessage})
	case errors.Is(err, pdfPkg.ErrNotEnoughFiles):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error().Err(err).Msg("PDF operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": truncateError(err)})
	}
}

// saveUpload validates an uploaded file and copies it to dst
func (h *Handlers) saveUpload(header *multipart.FileHeader, dst string) error {
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	if err := validatePDFFile(file, header, h.config.MaxFileSize); err != nil {
		return err
	}

	if err := saveFile(file, dst); err != nil {
		return errors.New("failed to save input file")
	}
	return nil
}

func (o output) withName(name string) output {
	o.name = name
	return o
}

// sendFile streams path to the client as an attachment
func sendFile(c *gin.Context, path string, out output) {
	// Set headers for file download
	c.Header("Content-Type", out.contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName(c, out)))
	c.File(path)
}

// downloadName derives the attachment name from the uploaded file name
func downloadName(c *gin.Context, out output) string {
	if out.name != "" {
		return out.name
	}

	base := uploadBaseName(c)
	if out.suffix != "" {
		base += "_" + out.suffix
	}
	return sanitizeFilename(base + out.ext)
}

// uploadBaseName is the uploaded file's name without extension
func uploadBaseName(c *gin.Context) string {
	if header, err := c.FormFile("pdf"); err == nil && header != nil {
		if base := pdfPkg.BaseName(sanitizeFilename(header.Filename)); base != "" {
			return base
		}
	}
	return "document"
}

func truncateError(err error) string {
	msg := err.Error()
	if msg == "" {
		return "PDF operation failed"
	}
	if len(msg) > MaxErrorMessageLength {
		return msg[:MaxErrorMessageLength] + "..."
	}
	return msg
}

// ensureTempDir creates the temp directory if it doesn't exist
func ensureTempDir(tempDir string) error {
	return os.MkdirAll(tempDir, DefaultFilePermissions)
}

func saveFile(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")

	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." {
		filename = "document.pdf"
	}

	return filename
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	return uuid.NewString()
}

// validatePDFFile checks the upload size and the %PDF header
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %s exceeds maximum allowed %s",
			humanize.Bytes(uint64(header.Size)), humanize.Bytes(uint64(maxSize)))
	}

	// Check for PDF header
	buffer := make([]byte, 4)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to read file header: %w", err)
	}

	if n < 4 || string(buffer) != "%PDF" {
		return pdfPkg.ErrNotPDF
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %w", err)
	}

	return nil
}
