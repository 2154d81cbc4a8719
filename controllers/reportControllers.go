package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huseyin4215/QRCal-sub002/authentication"
	"github.com/huseyin4215/QRCal-sub002/configuration"
	"github.com/huseyin4215/QRCal-sub002/filtering"
	"github.com/huseyin4215/QRCal-sub002/formatting"
	"github.com/huseyin4215/QRCal-sub002/reporting"
)

// ExportAppointmentHistory renders the filtered history as a PDF download.
// The same bucket and query parameters as the history view apply, so what
// the user sees is what gets exported.
func ExportAppointmentHistory(c *gin.Context) {
	claims := authentication.SessionFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return
	}

	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}
	if q.Filter == "" {
		q.Filter = filtering.BucketAll
	}

	subject := resolveSubject(c, claims)
	appointments := loadAppointments(c, claims, subject)
	now := time.Now()
	visible := filtering.Apply(appointments, q.Filter, q.Q, now)

	// the topic list is optional; without it reference-only topics print
	// their raw id
	topics, err := API.FetchTopics(c.Request.Context())
	if err != nil {
		log.Println("topic fetch failed, exporting without lookup:", err)
	}

	rows, err := reporting.BuildRows(visible, reporting.BuildTopicLookup(topics))
	if err != nil {
		if errors.Is(err, reporting.ErrEmptyInput) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no appointments to export"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment data"})
		return
	}
	stats := reporting.ComputeStats(visible)

	title := "Randevu Geçmişi Raporu"
	if name := formatting.FormatUserDisplayName(subject); name != "" {
		title = name + " - Randevu Geçmişi"
	}

	doc, err := reporting.RenderPDF(title, rows, stats, configuration.Cfg.FontDir)
	if err != nil {
		log.Println("pdf generation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.FileName(now)))
	c.Data(http.StatusOK, "application/pdf", doc)
}
