package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"finaura/api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxReceiptBytes = 10 << 20

func (h *Handler) HandleScanReceipt(c *gin.Context) {
	var (
		image    []byte
		filename string
	)

	file, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// The scanner may run without an image.
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		if file.Size > maxReceiptBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("receipt image exceeds %d bytes", maxReceiptBytes)})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		image, err = io.ReadAll(io.LimitReader(f, maxReceiptBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filename = file.Filename
	}

	record, err := h.scanner.Scan(c.Request.Context(), image, filename)
	if err != nil {
		respondError(c, "error scanning receipt", err)
		return
	}

	logger.Get().Info("receipt scanned",
		zap.String("filename", filename),
		zap.Int("bytes", len(image)),
		zap.String("merchant", record.Merchant))
	c.JSON(http.StatusOK, record)
}
