package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"github.com/musaada/musaada/utils"
	"gorm.io/gorm"
)

// ProfileController handles the session user's own profile.
type ProfileController struct {
	DB       *gorm.DB
	Uploader *utils.Uploader
}

func NewProfileController(gdb *gorm.DB, uploader *utils.Uploader) *ProfileController {
	return &ProfileController{DB: gdb, Uploader: uploader}
}

// Update patches the editable profile fields of the session user.
func (pc *ProfileController) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Avatar  *string `json:"avatar"`
		Bio     *string `json:"bio"`
		Address *string `json:"address"`
		City    *string `json:"city"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if len(updates) == 0 {
		return c.JSON(fiber.Map{"success": true, "user": user})
	}

	if err := pc.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل تحديث الملف الشخصي",
		})
	}

	var updated models.User
	pc.DB.First(&updated, user.ID)

	return c.JSON(fiber.Map{"success": true, "user": updated})
}

// UploadAvatar stores a profile picture in Cloudinary and saves the
// returned URL on the user.
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	if pc.Uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "خدمة رفع الصور غير متاحة حالياً",
		})
	}

	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "يرجى إرفاق صورة",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل قراءة الملف",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("user_%d_avatar", user.ID)
	url, err := pc.Uploader.Upload(c.Context(), file, publicID, "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل رفع الصورة",
		})
	}

	if err := pc.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("avatar", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل حفظ الصورة",
		})
	}

	return c.JSON(fiber.Map{"success": true, "avatar": url})
}
