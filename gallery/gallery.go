package gallery

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tripdesk/db"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	galleryDir = "./static/gallerypic"
	thumbDir   = "./static/gallerypic/thumb"
)

// saveImage decodes the upload, writes the original and a 300px-wide
// thumbnail, and returns the served paths.
func saveImage(file multipart.File) (string, string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	imageID := utils.GetUUID()
	fileName := imageID + ".jpg"

	if err := utils.EnsureDir(galleryDir); err != nil {
		return "", "", fmt.Errorf("failed to create gallery directory: %w", err)
	}
	if err := utils.EnsureDir(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(galleryDir, fileName)); err != nil {
		return "", "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/gallerypic/" + fileName, "/gallerypic/thumb/" + fileName, nil
}

// UploadImage returns an upload handler bound to an owner type so the
// same flow serves hotels and destinations.
func UploadImage(ownerType string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.Error(w, http.StatusBadRequest, "Unable to parse form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Image file is required")
			return
		}
		defer file.Close()

		if !utils.ValidateImageFileType(w, header) {
			return
		}

		path, thumb, err := saveImage(file)
		if err != nil {
			utils.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		image := models.GalleryImage{
			ImageID:   utils.GetUUID(),
			OwnerType: ownerType,
			OwnerID:   ps.ByName("id"),
			Path:      path,
			Thumb:     thumb,
			CreatedAt: time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.GalleryCollection.InsertOne(ctx, image); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error saving gallery record")
			return
		}

		utils.SendResponse(w, http.StatusCreated, image, "Image uploaded successfully", nil)
	}
}

// ListImages returns a handler serving the gallery of one hotel or
// destination, newest first.
func ListImages(ownerType string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		filter := bson.M{"owner_type": ownerType, "owner_id": ps.ByName("id")}
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		images, err := utils.FindAndDecode[models.GalleryImage](ctx, db.GalleryCollection, filter, opts)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Error fetching gallery")
			return
		}

		utils.JSON(w, http.StatusOK, images)
	}
}

// DeleteImage removes a gallery record and its files on disk.
func DeleteImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var image models.GalleryImage
	err := db.GalleryCollection.FindOneAndDelete(ctx, bson.M{"imageid": ps.ByName("id")}).Decode(&image)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Image not found")
		return
	}

	os.Remove(filepath.Join(galleryDir, filepath.Base(image.Path)))
	os.Remove(filepath.Join(thumbDir, filepath.Base(image.Thumb)))

	utils.SendResponse(w, http.StatusOK, nil, "Image deleted successfully", nil)
}
