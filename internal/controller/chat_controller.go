package controller

import (
	"strconv"

	"admission-advisor-be/internal/dto"
	"admission-advisor-be/internal/pkg/serverutils"
	"admission-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Turn(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Rewind(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("turn", c.Turn)
	h.Get("history/:sessionId", c.History)
	h.Get("history/:sessionId/:seq", c.Rewind)
}

func (c *chatController) Turn(ctx *fiber.Ctx) error {
	var req dto.TurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.chatService.HandleTurn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle turn", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.chatService.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *chatController) Rewind(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	seq, err := strconv.Atoi(ctx.Params("seq"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "seq must be an integer")
	}

	res, err := c.chatService.Rewind(ctx.Context(), &dto.RewindRequest{SessionId: sessionId, Seq: seq})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rewind checkpoint", res))
}
