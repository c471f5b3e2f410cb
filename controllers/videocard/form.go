package videocard

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	priceMin = decimal.NewFromFloat(0.01)
	priceMax = decimal.NewFromInt(20000)
)

// validateCard returns field-keyed messages for the create/edit form.
func validateCard(modelName string, price decimal.Decimal) map[string]string {
	fieldErrors := map[string]string{}
	if len(modelName) < 2 || len(modelName) > 100 {
		fieldErrors["model_name"] = "Model name must be between 2 and 100 characters"
	}
	if price.LessThan(priceMin) || price.GreaterThan(priceMax) {
		fieldErrors["price"] = "Price must be between 0.01 and 20000"
	}
	return fieldErrors
}

// parseTechnologyIDs splits the comma-separated checkbox selection,
// e.g. "1,3,5" -> [1 3 5]. Blank tokens are skipped.
func parseTechnologyIDs(raw string) ([]uint, error) {
	var ids []uint
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id64, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid technology id %q", tok)
		}
		ids = append(ids, uint(id64))
	}
	return ids, nil
}

// saveImage stores the uploaded file under uploadDir with a unique
// name and returns the bare file name for the DB.
func saveImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}
	base := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	filename := fmt.Sprintf("%s_%s", uuid.NewString(), base)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
