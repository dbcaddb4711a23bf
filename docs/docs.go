// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "description": "Exchanges the operator password for a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Operator password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.signInRequest"}}
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "404": {"description": "Authentication disabled", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/inventory": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Items in display order, newest detections first, with days remaining and severity.",
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "List inventory",
                "responses": {
                    "200": {"description": "count, items", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Blank fields default to \"New Item\", 1 pcs, Other, expiring in 7 days.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Add item",
                "parameters": [
                    {"description": "Item", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handlers.AddItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.InventoryItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/inventory/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removing an unknown id is not an error.",
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Remove item",
                "parameters": [
                    {"type": "string", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "status", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/scan": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Detects food items on the image and puts them in front of the inventory. Accepts multipart field \"image\", a raw image body, or JSON {\"image\": \"data:image/...;base64,...\"}.",
                "consumes": ["multipart/form-data", "image/jpeg", "image/png", "application/json"],
                "produces": ["application/json"],
                "tags": ["scan"],
                "summary": "Scan fridge image",
                "parameters": [
                    {"type": "file", "description": "Image file", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "added, items", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "409": {"description": "Scan in progress", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "413": {"description": "Image too large", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "502": {"description": "Vision model failed or answered malformed data", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/recipes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Builds one recipe around the inventory, favouring items that expire first. A model failure still answers 200 with fallback=true and an apologetic text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Suggest recipe",
                "parameters": [
                    {"description": "Preference", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handlers.RecipeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Recipe"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "409": {"description": "Recipe in progress", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "422": {"description": "Inventory is empty", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/telemetry": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Hourly sensor samples of the current session.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Telemetry series",
                "responses": {
                    "200": {"description": "count, samples", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DashboardSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/api/v1/logs/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filter logs by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.",
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Activity log",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "End of range; date-only is end of day", "name": "to", "in": "query"},
                    {"enum": ["ITEM_ADDED", "ITEM_REMOVED", "SCAN_MERGED", "SCAN_FAILED", "RECIPE_GENERATED", "RECIPE_FALLBACK"], "type": "string", "description": "Event type", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, events", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.errorResponse"}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "WebSocket; sends {\"type\":\"dashboard\",\"data\":DashboardSummary} on connect and then periodically.",
                "tags": ["dashboard"],
                "summary": "Dashboard stream",
                "parameters": [
                    {"type": "string", "description": "Period, e.g. 2s (max 10s)", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Period in milliseconds (max 10000)", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        }
    },
    "definitions": {
        "handlers.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.signInRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string", "example": "fridge-door"}}
        },
        "handlers.AddItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Milk"},
                "quantity": {"type": "number", "example": 1},
                "unit": {"type": "string", "example": "carton"},
                "category": {"type": "string", "example": "Dairy"},
                "expiry_date": {"type": "string", "example": "2025-03-12"}
            }
        },
        "handlers.RecipeRequest": {
            "type": "object",
            "properties": {"preference": {"type": "string", "example": "something spicy with chicken"}}
        },
        "models.InventoryItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "number"},
                "unit": {"type": "string"},
                "category": {"type": "string", "enum": ["Dairy", "Produce", "Meat", "Beverage", "Snack", "Condiment", "Other"]},
                "expiry_date": {"type": "string", "example": "2025-03-12"}
            }
        },
        "service.RecipeBlock": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["heading1", "heading2", "heading3", "bullet", "step", "paragraph"]},
                "text": {"type": "string"},
                "number": {"type": "integer"}
            }
        },
        "service.Recipe": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "blocks": {"type": "array", "items": {"$ref": "#/definitions/service.RecipeBlock"}},
                "fallback": {"type": "boolean"}
            }
        },
        "service.DashboardSummary": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ONLINE"},
                "total_items": {"type": "integer"},
                "expiring_soon": {"type": "integer"},
                "categories": {"type": "object", "additionalProperties": {"type": "integer"}},
                "fridge_temp_c": {"type": "number"},
                "freezer_temp_c": {"type": "number"},
                "humidity_pct": {"type": "number"},
                "power_w": {"type": "number"},
                "scanning": {"type": "boolean"},
                "cooking": {"type": "boolean"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Smart Fridge API",
	Description:      "Inventory, expiry tracking, image scans, recipes and telemetry of a smart refrigerator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
