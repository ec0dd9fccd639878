package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/policy-transfer/internal/errs"
)

func (h *Handler) ProcessAndUpload(c *gin.Context) {
	payload, filename, err := readPayload(c)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.ingest.Ingest(c.Request.Context(), payload, filename)
	if err != nil {
		h.log.Warn("ingest failed",
			zap.String("filename", filename),
			zap.String("kind", string(errs.KindOf(err))),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "data stored and processed results uploaded",
		"policies":    res.Policies,
		"results_key": res.ResultsKey,
	})
}

// readPayload accepts either a multipart "file" part or an inlined "jsonData"
// form field, mirroring the two upload modes of the form client.
func readPayload(c *gin.Context) ([]byte, string, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, "", errs.Wrap(errs.InvalidRequest, "failed to open uploaded file", err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, "", errs.Wrap(errs.InvalidRequest, "failed to read uploaded file", err)
		}
		return data, fh.Filename, nil
	}

	if raw := c.PostForm("jsonData"); raw != "" {
		return []byte(raw), "", nil
	}

	return nil, "", errs.New(errs.InvalidRequest, "no data provided")
}
