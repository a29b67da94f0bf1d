// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go --parseInternal
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
        "/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "List contact messages",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Contact"}}
                    },
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["contact"],
                "summary": "Submit a contact message",
                "parameters": [
                    {
                        "description": "Contact message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.contactRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/contact/send-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["contact"],
                "summary": "Send an email",
                "parameters": [
                    {
                        "description": "Email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.sendEmailRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/users/{userId}/favorites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "List a user's favorite events",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.FavoriteEvent"}}
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Favorite an event",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true},
                    {
                        "description": "Event",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.favoriteRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.FavoriteEvent"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.contactRequest": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "message": {"type": "string", "maxLength": 5000},
                "name": {"type": "string", "maxLength": 100},
                "subject": {"type": "string", "maxLength": 200}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/handler.fieldError"}},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "handler.favoriteRequest": {
            "type": "object",
            "required": ["event_id"],
            "properties": {
                "event_id": {"type": "string", "maxLength": 64}
            }
        },
        "handler.fieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"}
            }
        },
        "handler.sendEmailRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "recipient": {"type": "string"},
                "subject": {"type": "string"},
                "to": {"type": "string"}
            }
        },
        "model.Contact": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "model.FavoriteEvent": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "event_id": {"type": "string"},
                "id": {"type": "string"},
                "user_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Finder API",
	Description:      "Contact form, outbound email and favorite events backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
