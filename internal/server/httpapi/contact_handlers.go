package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// contactRequest is the closed request schema for contact payloads. Unknown
// JSON keys are dropped by binding; id and owner are never read from the body.
type contactRequest struct {
	Ime           string `json:"ime"`
	Prezime       string `json:"prezime"`
	Email         string `json:"email"`
	Telefon       string `json:"telefon"`
	Adresa        string `json:"adresa"`
	Linkedin      string `json:"linkedin"`
	Skype         string `json:"skype"`
	Instagram     string `json:"instagram"`
	DatumRodjenja string `json:"datumRodjenja"`
	Jmbg          string `json:"jmbg"`
}

func (r contactRequest) toFields() services.ContactFields {
	return services.ContactFields{
		Ime:           r.Ime,
		Prezime:       r.Prezime,
		Email:         r.Email,
		Telefon:       r.Telefon,
		Adresa:        r.Adresa,
		Linkedin:      r.Linkedin,
		Skype:         r.Skype,
		Instagram:     r.Instagram,
		DatumRodjenja: r.DatumRodjenja,
		Jmbg:          r.Jmbg,
	}
}

// contactID parses the :id route parameter. A non-numeric id cannot match any
// contact, so it reports false and the caller responds 404.
func contactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) listContacts(c *gin.Context) {
	list, err := s.contacts.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.logger.Error(c.Request.Context(), "contact list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) getContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
		return
	}

	contact, err := s.contacts.Get(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "contact get failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (s *HTTPServer) createContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidBody})
		return
	}

	contact, err := s.contacts.Create(c.Request.Context(), currentUserID(c), req.toFields())
	if err != nil {
		s.logger.Error(c.Request.Context(), "contact create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (s *HTTPServer) updateContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidBody})
		return
	}

	contact, err := s.contacts.Update(c.Request.Context(), id, currentUserID(c), req.toFields())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "contact update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (s *HTTPServer) deleteContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
		return
	}

	err := s.contacts.Delete(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgContactNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "contact delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msgContactDeleted})
}
