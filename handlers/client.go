package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/middleware"
	"github.com/cgrworks/quotation-api/models"
	"github.com/cgrworks/quotation-api/store"
)

type ClientHandler struct {
	Store *store.Store
	WS    *WSHandler
}

// GetClients returns the client directory.
func (h *ClientHandler) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Snapshot().Clients)
}

// GetClient returns one client by ID.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, found := h.Store.GetClient(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient registers a client and returns its generated ID.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.ID = ""
	id, err := h.Store.AddClient(client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save client"})
		return
	}

	h.WS.BroadcastUpdate("client_added", middleware.GetUserEmail(c))
	client.ID = id
	c.JSON(http.StatusCreated, client)
}

// UpdateClient replaces a directory entry.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = c.Param("id")

	if _, found := h.Store.GetClient(client.ID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := h.Store.UpdateClient(client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	h.WS.BroadcastUpdate("client_updated", middleware.GetUserEmail(c))
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. The store's delete is unconditional, so
// the referential-integrity check lives here: a client still referenced by
// any budget cannot be removed.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")

	if _, found := h.Store.GetClient(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if h.Store.ClientInUse(id) {
		c.JSON(http.StatusConflict, gin.H{"error": "Client is referenced by existing budgets and cannot be deleted"})
		return
	}

	if err := h.Store.DeleteClient(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	h.WS.BroadcastUpdate("client_deleted", middleware.GetUserEmail(c))
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
