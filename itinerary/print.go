package itinerary

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tripdesk/db"
	"tripdesk/globals"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

const galleryImagesPerEntity = 3

// signReference returns an HMAC-signed reference payload for the QR code,
// so a printed plan can be traced back to its record.
func signReference(itineraryID string) string {
	data := fmt.Sprintf("%s|%d", itineraryID, time.Now().Unix())
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

func galleryPaths(ctx context.Context, ownerType, ownerID string) []string {
	images, err := utils.FindAndDecode[models.GalleryImage](ctx, db.GalleryCollection,
		bson.M{"owner_type": ownerType, "owner_id": ownerID})
	if err != nil {
		return nil
	}
	paths := []string{}
	for _, img := range images {
		if len(paths) == galleryImagesPerEntity {
			break
		}
		// stored paths are URL paths under /gallerypic; map to disk
		paths = append(paths, filepath.Join("static", filepath.FromSlash(img.Thumb)))
	}
	return paths
}

// GET /Iternary/print/:id
func PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, activeByID(itineraryID)).Decode(&it)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	hotelOptions, _ := HotelOptions(ctx)
	destOptions, _ := DestinationOptions(ctx)
	hotels := ResolveSelections(it.HotelSelected, hotelOptions)
	dests := ResolveSelections(it.Destinations, destOptions)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, it.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Journey Date: %s    Days: %d    Persons: %d", it.Date, it.Days, it.PersonNo))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Pickup: %s at %s    Drop: %s at %s", it.PickLoc, it.PickTime, it.DropLoc, it.DropTime))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Vehicle: %s    Hotel Type: %s", it.Vehicle, it.HotelType))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Package: %s    Cost: %.2f    Advance: %.2f", it.Package, it.Cost, it.Advance))
	pdf.Ln(10)

	for _, day := range it.DynamicFields {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, day.DayTitle)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, point := range day.Points {
			pdf.Cell(0, 6, "- "+point)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	if len(it.CostInclude) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Cost Includes")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, item := range it.CostInclude {
			pdf.Cell(0, 6, "+ "+item)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}
	if len(it.CostExclude) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Cost Excludes")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, item := range it.CostExclude {
			pdf.Cell(0, 6, "x "+item)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	addGallerySection(ctx, pdf, "Hotels", "hotel", hotels)
	addGallerySection(ctx, pdf, "Destinations", "destination", dests)

	// Verification QR in the bottom-right corner
	qrPNG, err := qrcode.Encode(signReference(it.ItineraryID), qrcode.Medium, 256)
	if err == nil {
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qr", 165, 250, 30, 30, false, imageOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+itineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func addGallerySection(ctx context.Context, pdf *gofpdf.Fpdf, heading, ownerType string, selections []models.Option) {
	if len(selections) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)

	for _, sel := range selections {
		pdf.Cell(0, 6, sel.Label)
		pdf.Ln(6)

		x := pdf.GetX()
		for _, path := range galleryPaths(ctx, ownerType, sel.ID) {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			imgType := strings.TrimPrefix(strings.ToUpper(filepath.Ext(path)), ".")
			if imgType == "JPG" {
				imgType = "JPEG"
			}
			opts := gofpdf.ImageOptions{ImageType: imgType}
			pdf.ImageOptions(path, x, pdf.GetY(), 40, 0, false, opts, 0, "")
			x += 45
		}
		pdf.Ln(32)
	}
}
