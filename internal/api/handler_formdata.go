package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ezpickup-backend/internal/model"
)

type cityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type conditionResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type variantNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type modelNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Variants []variantNode `json:"variants"`
}

type brandNode struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Models []modelNode `json:"models"`
}

type deviceNode struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Brands []brandNode `json:"brands"`
}

type categoryNode struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Icon    string       `json:"icon"`
	Devices []deviceNode `json:"devices"`
}

// GetFormData handles the GET /api/form-data request: everything the
// booking form needs in one payload.
func (h *Handler) GetFormData(c *gin.Context) {
	ctx := c.Request.Context()

	cities, err := h.store.ListActiveCities(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.store.ListCatalogTree(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	conditions, err := h.store.ListActiveConditions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	cityList := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		cityList = append(cityList, cityResponse{ID: city.ID, Name: city.Name, State: city.State})
	}

	conditionList := make([]conditionResponse, 0, len(conditions))
	for _, cond := range conditions {
		conditionList = append(conditionList, conditionResponse{
			ID: cond.ID, Name: cond.Name, Multiplier: cond.Multiplier,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"cities":     cityList,
		"categories": buildCatalogTree(categories),
		"conditions": conditionList,
	})
}

func buildCatalogTree(categories []model.Category) []categoryNode {
	tree := make([]categoryNode, 0, len(categories))
	for _, cat := range categories {
		catNode := categoryNode{ID: cat.ID, Name: cat.Name, Icon: cat.Icon, Devices: []deviceNode{}}
		for _, dev := range cat.Devices {
			devNode := deviceNode{ID: dev.ID, Name: dev.Name, Brands: []brandNode{}}
			for _, brand := range dev.Brands {
				bNode := brandNode{ID: brand.ID, Name: brand.Name, Models: []modelNode{}}
				for _, m := range brand.Models {
					mNode := modelNode{ID: m.ID, Name: m.Name, Variants: []variantNode{}}
					for _, v := range m.Variants {
						mNode.Variants = append(mNode.Variants, variantNode{ID: v.ID, Name: v.Name})
					}
					bNode.Models = append(bNode.Models, mNode)
				}
				devNode.Brands = append(devNode.Brands, bNode)
			}
			catNode.Devices = append(catNode.Devices, devNode)
		}
		tree = append(tree, catNode)
	}
	return tree
}
