package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirsten0429/monkey-shoes/internal/domain"
	"github.com/kirsten0429/monkey-shoes/internal/usecase"
)

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return
	}
	created, err := s.ledger.Create(req.toDomain())
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListOrders(c *gin.Context) {
	orders, err := s.ledger.List()
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	q := c.Query("q")
	unpaidOnly := c.Query("filter") == "unpaid"
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" && !strings.Contains(o.CustomerName, q) && !strings.Contains(o.CustomerPhone, q) {
			continue
		}
		if unpaidOnly && o.IsPaid {
			continue
		}
		out = append(out, o)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateOrder(c *gin.Context) {
	var req orderPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return
	}
	o := req.toDomain()
	o.ID = c.Param("id")
	if err := s.ledger.Update(o); err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	// unknown ids are a no-op, not an error
	c.JSON(http.StatusOK, o)
}

func (s *Server) handleDeleteOrder(c *gin.Context) {
	if err := s.ledger.Delete(c.Param("id")); err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListCustomers(c *gin.Context) {
	customers, err := s.roster.List()
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	q := c.Query("q")
	out := make([]domain.Customer, 0, len(customers))
	for _, cust := range customers {
		if q != "" && !strings.Contains(cust.Name, q) && !strings.Contains(cust.Phone, q) {
			continue
		}
		out = append(out, cust)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleSuggestCustomers(c *gin.Context) {
	phone := c.Query("phone")
	if len(phone) < 3 {
		c.JSON(http.StatusOK, []usecase.Suggestion{})
		return
	}
	matches, err := s.roster.Suggest(phone, 3)
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (s *Server) handleToggleVIP(c *gin.Context) {
	if err := s.roster.ToggleVIP(c.Param("phone")); err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStats(c *gin.Context) {
	r := usecase.StatsRange(c.DefaultQuery("range", string(usecase.RangeWeek)))
	switch r {
	case usecase.RangeWeek, usecase.RangeMonth, usecase.RangeYear:
	default:
		s.err(c, http.StatusBadRequest, "BadRequest", "range must be week, month or year")
		return
	}
	summary, err := s.stats.Summary(r)
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleDailyStats(c *gin.Context) {
	daily, err := s.stats.Daily()
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.JSON(http.StatusOK, daily)
}

func (s *Server) handleExport(c *gin.Context) {
	data, err := s.backup.ExportJSON()
	if err != nil {
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+s.backup.Filename()+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) handleImport(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		s.err(c, http.StatusBadRequest, "BadRequest", "cannot read body")
		return
	}
	if err := s.backup.Import(data); err != nil {
		var bad usecase.ErrBadSnapshot
		if errors.As(err, &bad) {
			s.err(c, http.StatusBadRequest, "FormatError", bad.Error())
			return
		}
		s.err(c, http.StatusInternalServerError, "StorageFailure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": true})
}
