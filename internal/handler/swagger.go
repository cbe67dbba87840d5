package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/fortuna/fortuna-dashboard/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 spec structure
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// transformRefs recursively transforms $ref from #/definitions/ to #/components/schemas/
func transformRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			result[key] = transformRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = transformRefs(item)
		}
		return result
	default:
		return data
	}
}

// transformOperation converts one Swagger 2.0 operation: query and path
// parameters get a schema, body and formData parameters become a requestBody,
// and responses get a content map.
func transformOperation(op map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(op))
	for key, value := range op {
		switch key {
		case "parameters", "responses", "consumes", "produces":
		default:
			result[key] = transformRefs(value)
		}
	}

	params, _ := op["parameters"].([]interface{})
	var converted []interface{}
	formProps := make(map[string]interface{})
	var formRequired []interface{}
	for _, raw := range params {
		param, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		switch param["in"] {
		case "body":
			result["requestBody"] = map[string]interface{}{
				"required": param["required"],
				"content": map[string]interface{}{
					"application/json": map[string]interface{}{"schema": transformRefs(param["schema"])},
				},
			}
		case "formData":
			prop := map[string]interface{}{"type": param["type"]}
			if param["type"] == "file" {
				prop = map[string]interface{}{"type": "string", "format": "binary"}
			}
			formProps[param["name"].(string)] = prop
			if required, _ := param["required"].(bool); required {
				formRequired = append(formRequired, param["name"])
			}
		default:
			converted = append(converted, transformParameter(param))
		}
	}
	if len(formProps) > 0 {
		schema := map[string]interface{}{"type": "object", "properties": formProps}
		if len(formRequired) > 0 {
			schema["required"] = formRequired
		}
		result["requestBody"] = map[string]interface{}{
			"content": map[string]interface{}{
				"multipart/form-data": map[string]interface{}{"schema": schema},
			},
		}
	}
	if len(converted) > 0 {
		result["parameters"] = converted
	}

	mediaType := "application/json"
	if produces, ok := op["produces"].([]interface{}); ok && len(produces) > 0 {
		if s, ok := produces[0].(string); ok {
			mediaType = s
		}
	}
	responses := make(map[string]interface{})
	if raw, ok := op["responses"].(map[string]interface{}); ok {
		for code, value := range raw {
			resp, _ := value.(map[string]interface{})
			out := map[string]interface{}{"description": resp["description"]}
			if schema, ok := resp["schema"]; ok {
				mt := mediaType
				m, _ := schema.(map[string]interface{})
				if ref, ok := m["$ref"].(string); ok && strings.HasSuffix(ref, "ProblemDetails") {
					mt = "application/problem+json"
				}
				if m["type"] == "file" {
					schema = map[string]interface{}{"type": "string", "format": "binary"}
				}
				out["content"] = map[string]interface{}{mt: map[string]interface{}{"schema": transformRefs(schema)}}
			}
			responses[code] = out
		}
	}
	result["responses"] = responses
	return result
}

// transformParameter converts a Swagger 2.0 query or path parameter to OpenAPI 3.0 format
func transformParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		if val, ok := param[field]; ok {
			schema[field] = transformRefs(val)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}
	if param["collectionFormat"] == "multi" {
		result["style"] = "form"
		result["explode"] = true
	}
	return result
}

// OpenAPI3Handler serves the swagger spec converted to OpenAPI 3.0 with the given servers
func OpenAPI3Handler(servers []Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return NewInternalError(c, "Failed to read swagger doc")
		}

		var swagger2 map[string]interface{}
		if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
			return NewInternalError(c, "Failed to parse swagger doc")
		}

		info, _ := swagger2["info"].(map[string]interface{})

		paths := make(map[string]interface{})
		if raw, ok := swagger2["paths"].(map[string]interface{}); ok {
			for path, value := range raw {
				ops, _ := value.(map[string]interface{})
				converted := make(map[string]interface{}, len(ops))
				for method, op := range ops {
					if opMap, ok := op.(map[string]interface{}); ok {
						converted[method] = transformOperation(opMap)
					}
				}
				paths[path] = converted
			}
		}

		components := make(map[string]interface{})
		if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
			components["schemas"] = transformRefs(definitions)
		}

		return c.JSON(http.StatusOK, OpenAPI3Spec{
			OpenAPI:    "3.0.3",
			Info:       info,
			Servers:    servers,
			Paths:      paths,
			Components: components,
		})
	}
}
