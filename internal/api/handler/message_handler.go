package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/api/metrics"
	"github.com/saas-pm/project-hub/internal/core/ports"
)

type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Send stores a direct message from the caller.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      422   {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	msg, err := h.messages.Send(c.Request().Context(), user.ID, req.ReceiverID, req.Content)
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, msg)
}

// List returns the caller's conversation history, oldest first.
//
// @Summary      List my messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Message
// @Router       /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.messages.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Contacts returns the users the caller may message.
//
// @Summary      List my contacts
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Router       /messages/contacts [get]
func (h *MessageHandler) Contacts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	contacts, err := h.messages.Contacts(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(contacts))
}
