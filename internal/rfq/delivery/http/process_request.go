package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

// querySchema accepts any object with a string "query". Blank queries pass
// here and are rejected by the use case.
var querySchema = mustSchema(`{
	"type": "object",
	"properties": {
		"query": {"type": "string"}
	},
	"required": ["query"]
}`)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}

// schemaError lists the schema violations of a request body.
type schemaError struct {
	details []string
}

func (e *schemaError) Error() string {
	return msgValidationError
}

// processQueryReq reads the body, checks it against querySchema and binds it.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq

	body, err := c.GetRawData()
	if err != nil {
		return req, errInvalidBody
	}

	result, err := h.querySchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Not JSON at all.
		return req, errInvalidBody
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return req, &schemaError{details: details}
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
