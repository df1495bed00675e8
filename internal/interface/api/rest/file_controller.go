package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	fileDomain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/interface/api/rest/dto/file"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService    ports.FileService
	catalogService ports.CatalogService
	sessionService ports.SessionService
	logger         *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	catalogService ports.CatalogService,
	sessionService ports.SessionService,
	logger *zap.Logger,
) *FileController {
	fc := &FileController{
		fileService:    fileService,
		catalogService: catalogService,
		sessionService: sessionService,
		logger:         logger,
	}

	gate := middleware.SessionAuth(sessionService, logger)

	r.GET(RouteFiles, fc.ListHandler)
	r.GET(RouteFile, fc.DownloadHandler)
	r.POST(RouteUploadFile, gate, fc.UploadHandler)
	r.GET(RouteFileDetail, fc.DetailHandler)
	r.GET(RouteMyFiles, gate, fc.MyFilesHandler)

	return fc
}

func (fc *FileController) ListHandler(c *gin.Context) {
	page, perPage, err := validator.ValidatePage(c.Query("page"), c.Query("per_page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := fileDomain.CatalogQuery{Page: page, PerPage: perPage}
	if ft := c.Query("filetype"); ft != "" {
		q.Filetype = &ft
	}
	if uidStr := c.Query("user_id"); uidStr != "" {
		uid, err := validator.ParseID(uidStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id " + err.Error()})
			return
		}
		id := user.ID(uid)
		q.UserID = &id
	}

	p, err := fc.catalogService.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("List() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ToResponsePage(*p))
}

// DownloadHandler returns the stored blob as an attachment under its original
// name and declared content type.
func (fc *FileController) DownloadHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id " + err.Error()})
		return
	}

	f, err := fc.fileService.Download(c.Request.Context(), fileDomain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("Download() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.Data(http.StatusOK, f.Filetype, f.Content)
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	// must run before any form access: it is the only chance to see the
	// order the file parts arrived in
	order, err := fileFieldOrder(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	userIDStr := c.PostForm("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user ID provided"})
		return
	}
	userID, err := validator.ParseID(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user ID provided"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	uploads := orderFileHeaders(form, order)
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	var infos []file.UploadInfo
	if raw := c.PostForm("files"); raw != "" {
		if err = json.Unmarshal([]byte(raw), &infos); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid files metadata"})
			return
		}
	}

	stored, err := fc.fileService.Upload(
		c.Request.Context(),
		user.ID(userID),
		uploads,
		file.ToDomainInfos(infos),
		c.PostForm("category"),
	)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload files"},
		)
		fc.logger.Error("Upload() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, file.UploadResponse{
		Message: "Files uploaded successfully",
		Files:   file.ToResponseUploaded(stored),
	})
}

// DetailHandler includes the caller's vote state when a session rides along;
// anonymous callers simply get voted=false.
func (fc *FileController) DetailHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id " + err.Error()})
		return
	}

	var caller *user.ID
	if token := middleware.TokenFromRequest(c); token != "" {
		u, err := fc.sessionService.Resolve(c.Request.Context(), token)
		if err != nil {
			fc.logger.Error("Resolve() session error", zap.Error(err))
		} else if u != nil {
			caller = &u.ID
		}
	}

	d, err := fc.catalogService.Detail(c.Request.Context(), fileDomain.ID(id), caller)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("Detail() error", zap.Error(err))
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.JSON(http.StatusOK, file.ToResponseDetail(*d))
}

func (fc *FileController) MyFilesHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id " + err.Error()})
		return
	}

	entries, err := fc.fileService.UserFiles(c.Request.Context(), user.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("UserFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ToResponseUserFiles(entries))
}

// fileFieldOrder records the field name of every file part in the order the
// parts appear on the wire, then restores the body for the regular form
// parse. Parsed multipart forms are keyed maps and lose that order, but the
// per-file metadata overrides pair with the files by arrival index.
func fileFieldOrder(c *gin.Context) ([]string, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	_, params, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if err != nil {
		return nil, err
	}
	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])

	var order []string
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if p.FileName() != "" {
			order = append(order, p.FormName())
		}
		_ = p.Close()
	}

	return order, nil
}

// orderFileHeaders arranges the parsed headers back into arrival order.
// Repeated field names map onto their headers first-to-first; the parser
// keeps arrival order within a single field.
func orderFileHeaders(form *multipart.Form, order []string) []*multipart.FileHeader {
	taken := make(map[string]int, len(form.File))
	out := make([]*multipart.FileHeader, 0, len(order))
	for _, name := range order {
		fhs := form.File[name]
		idx := taken[name]
		if idx < len(fhs) {
			out = append(out, fhs[idx])
			taken[name]++
		}
	}
	return out
}
