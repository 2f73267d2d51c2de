// Package export flattens the reconciled plan into the text formats the
// dashboard downloads: CSV and JSON offer sheets and the HTML email digest.
// Binary renderers (PDF, Word, images) live outside this service.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/sales-plan/backend/internal/models"
)

var csvHeader = []string{
	"Month", "Offer ID", "Title", "Type", "Pricing", "Discount",
	"Why It Works", "Channels", "Collateral Types", "Status",
}

// WriteOffersCSV writes one row per offer across the given months.
func WriteOffersCSV(w io.Writer, months []models.Month) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range months {
		for _, o := range m.Offers {
			status := "active"
			if o.Cancelled {
				status = "cancelled"
			}
			row := []string{
				m.Name, o.ID, o.Title, o.Type, o.Pricing, o.Discount,
				o.WhyItWorks, channelList(o), typeList(o), status,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func channelList(o models.Offer) string {
	if o.CollateralChannels == nil {
		return ""
	}
	ch := *o.CollateralChannels
	var names []string
	for _, e := range []struct {
		set  bool
		name string
	}{
		{ch.WhatsApp, "WhatsApp"},
		{ch.Email, "Email"},
		{ch.InStudio, "In-Studio"},
		{ch.Website, "Website"},
		{ch.SocialMedia, "Social Media"},
		{ch.MetaAds, "Meta Ads"},
	} {
		if e.set {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ", ")
}

func typeList(o models.Offer) string {
	if o.CollateralTypes == nil {
		return ""
	}
	ct := *o.CollateralTypes
	var names []string
	for _, e := range []struct {
		set  bool
		name string
	}{
		{ct.TentCards, "Tent Cards"},
		{ct.ImageCreative, "Image Creative"},
		{ct.VideoCreative, "Video Creative"},
		{ct.EaselStandee, "Easel Standee"},
		{ct.EmailTemplate, "Email Template"},
		{ct.LandingPage, "Landing Page"},
		{ct.SocialPosts, "Social Posts"},
		{ct.StoryTemplate, "Story Template"},
	} {
		if e.set {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, ", ")
}
