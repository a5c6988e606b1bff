package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	"go-blog-graphql/pkg/response"
	"go-blog-graphql/pkg/validation"
)

// Handler serves the GraphQL endpoint over a single POST route.
type Handler struct {
	schema graphql.Schema
	logger *logrus.Logger
}

func NewHandler(schema graphql.Schema, logger *logrus.Logger) *Handler {
	return &Handler{schema: schema, logger: logger}
}

type graphqlRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve executes one GraphQL request. Transport errors use the JSON envelope,
// execution errors travel in the GraphQL errors array with extensions.
func (h *Handler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	if len(result.Errors) > 0 && h.logger != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"operation":  req.OperationName,
			"errors":     len(result.Errors),
		}).Warn("graphql request finished with errors")
	}

	c.JSON(http.StatusOK, result)
}
