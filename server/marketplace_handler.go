package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleListItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var request models.CreateItemRequest
		if err := decode(c, &request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		item, err := s.MarketplaceService.ListItem(userID, &request)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Item listed", http.StatusCreated, item, nil)
	}
}

func (s *Server) handleGetMyItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		items, err := s.MarketplaceService.GetUserItems(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, items, nil)
	}
}

// handleBrowseItems is public; visitors only ever see approved listings.
func (s *Server) handleBrowseItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.MarketplaceService.BrowseItems(models.ItemStatusApproved)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, items, nil)
	}
}

func (s *Server) handleApproveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		itemID, ok := parseUUIDParam(c, "itemID")
		if !ok {
			return
		}

		approved, err := s.MarketplaceService.ApproveItem(itemID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Item approved", http.StatusOK, approved, nil)
	}
}

func (s *Server) handleRejectItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		itemID, ok := parseUUIDParam(c, "itemID")
		if !ok {
			return
		}

		item, err := s.MarketplaceService.RejectItem(itemID, adminID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Item rejected", http.StatusOK, item, nil)
	}
}
