package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) uploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgNoFileUploaded})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.logger.Error(c.Request.Context(), "upload open failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	defer f.Close()

	stored, err := s.files.Save(c.Request.Context(), currentUserID(c), fh.Filename, f, fh.Size)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnsupportedFileType):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgUnsupportedFile})
		case errors.Is(err, common.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgFileTooLarge})
		default:
			s.logger.Error(c.Request.Context(), "upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		}
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (s *HTTPServer) listFiles(c *gin.Context) {
	files, err := s.files.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.logger.Error(c.Request.Context(), "upload list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, files)
}

func (s *HTTPServer) deleteFile(c *gin.Context) {
	err := s.files.Delete(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgFileNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "upload delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msgFileDeleted})
}
