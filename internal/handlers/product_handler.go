package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
	Stock int     `json:"stock"`
}

type UpdateProductRequest struct {
	Name   *string  `json:"name,omitempty"`
	Price  *float64 `json:"price,omitempty"`
	Stock  *int     `json:"stock,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Order("name ASC")
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Errore nel caricamento.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	product := models.Product{
		Name:   req.Name,
		Price:  req.Price,
		Stock:  req.Stock,
		Active: true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Errore nella creazione.")
		return
	}

	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Prodotto non trovato.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Errore nel salvataggio.")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Product{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Errore nella cancellazione.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
