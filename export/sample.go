package export

import (
	"time"

	"github.com/cgrworks/quotation-api/models"
)

// SampleQuotation is the preview document shown before any real budget
// exists. The content is the Novena Church granite repair job the product
// was first built for.
func SampleQuotation() models.Quotation {
	return models.Quotation{
		ID:              "sample-001",
		QuotationNumber: "CGR-QUO-NC-25-03-077",
		Client: models.QuotationClient{
			Name:          "Church of St Alphonsus (Novena Church)",
			ContactPerson: "Mr. Bernard",
			Email:         "operations@novenachurch.com",
			Phone:         "+65 6255 2133",
			Address:       "300 Thomson Rd, Singapore 307653",
		},
		Project: models.Project{
			ServiceType:  "Repair Granite panel & Sealant works",
			ProjectScale: "Large",
			UrgencyLevel: "normal",
			StartDate:    "2024-01-15",
			Duration:     "3 months",
			Description:  "Repair Granite panel & Sealant works at Church of St Alphonsus (Novena Church) 300 Thomson Rd, Singapore 307653",
		},
		Sections: []models.QuotationSection{
			{
				ID:         "section-1",
				ItemNumber: 1,
				Name:       "Install back Granite panel at clock tower",
				Description: "To carry out necessary cleaning and protection to the work area prior to the works commencement.\n" +
					"Install with SS316 bracket mounting on the existing RC structure.\n" +
					"Apply non-stain non-bleeding silicon sealant.\n" +
					"Carry out general cleaning before handover.",
				Quantity:     2,
				UOM:          "",
				Rate:         700,
				Amount:       1400,
				SectionTotal: 1400,
				Images: []models.QuotationImage{
					{Src: "https://i.imgur.com/k6lP0Wn.png", Alt: "Clock tower detail", Overlay: "Drop1"},
				},
				Annotations: []models.Annotation{
					{Type: models.AnnotationRed, Text: "3] Top coping stone panel is missing, to re-instate, how much?"},
					{Type: models.AnnotationBlue, Text: "#1] The new stone panel is supply by who Client or Contractor. Thickness 35mm"},
				},
			},
			{
				ID:         "section-2",
				ItemNumber: 2,
				Name:       "Re-Sealant Work to the clock tower",
				Description: "To carry out necessary cleaning and protection to the work area prior to the works commencement.\n" +
					"Clean the granite gap with IPA and apply primer to enhance adhesion between the sealant and the substrate.\n" +
					"Apply with non-stain non-bleed weatherbound silicon Sealant to the granite gape.\n" +
					"Insert Backer-rod to existing gape before applying the sealant.",
				Quantity:     1,
				UOM:          "Lump sum",
				Rate:         17200,
				Amount:       17200,
				SectionTotal: 17200,
				Images: []models.QuotationImage{
					{Src: "https://i.imgur.com/Xw12n1T.png", Alt: "Clock tower sealant work"},
				},
				Annotations: []models.Annotation{
					{Type: models.AnnotationBlue, Text: "#2] Silicone sealant from brand DowSil, Sika or GE Momentive only. example DC991 or SCS9000NB or WS-355N only.\nSealant to the entire Clock tower, at 2 sides - front and side facing the mall from Ground Level to top."},
				},
			},
			{
				ID:         "section-3",
				ItemNumber: 3,
				Name:       "Re-Sealant Work to the beam soffit",
				Description: "To carry out necessary cleaning and protection to the work area prior to the works commencement.\n" +
					"Clean the granite gap with IPA and apply primer to enhance adhesion between the sealant and the substrate.\n" +
					"Apply with non-stain non-bleed weatherbound silicon Sealant to the granite gape.\n" +
					"Insert Backer-rod to existing gape before applying the sealant.\n" +
					"Carry out general cleaning before handover.",
				Quantity:     11,
				UOM:          "Lump sum",
				Rate:         600,
				Amount:       6600,
				SectionTotal: 6600,
				Images: []models.QuotationImage{
					{Src: "https://i.imgur.com/rN55K2v.png", Alt: "Beam soffit detail 1"},
					{Src: "https://i.imgur.com/2s4R5uC.png", Alt: "Beam soffit detail 2"},
				},
				Annotations: []models.Annotation{
					{Type: models.AnnotationBlue, Text: "#3] Silicone sealant from brand DowSil, Sika or GE Momentive only. example DC991 or SCS9000NB or WS-355N only.\nSealant to all the soffit panels and upturned."},
				},
			},
		},
		Totals: models.Totals{
			Subtotal: 25200,
			GST:      1764,
			Total:    26964,
		},
		CreatedAt:    time.Now(),
		ValidityDays: 15,
		Status:       models.QuotationStatusDraft,
	}
}
