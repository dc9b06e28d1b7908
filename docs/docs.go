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
        "/v1/sessions": {
            "post": {
                "description": "Creates an unauthenticated session and returns the bearer token that identifies it.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open a client instance",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.openSessionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["sessions"],
                "summary": "Close the client instance",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/login": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Login",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Register",
                "parameters": [{"description": "Registration profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/view": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Active view",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.View"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "A view the role may not open renders the denial marker (denied=true) and the active view is unchanged. Unknown views land on the dashboard.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Navigate",
                "parameters": [{"description": "Target view", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.navigateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/nav": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Navigation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.navResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/dashboard/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "status is pending until the fetch settles. The text is never cached between dashboard visits.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.summaryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/reports": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Reports",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.View"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "User accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.View"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.NavItem": {
            "type": "object",
            "properties": {
                "allowed_roles": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "domain.SummaryResult": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "domain.SummaryState": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/domain.SummaryResult"},
                "status": {"type": "string"}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "active_view": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "state": {"type": "string"},
                "summary": {"$ref": "#/definitions/domain.SummaryState"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.View": {
            "type": "object",
            "properties": {
                "content": {},
                "denied": {"type": "boolean"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "notice": {"type": "string"},
                "role": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "maxLength": 128},
                "username": {"type": "string", "maxLength": 128}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string", "maxLength": 512},
                "email": {"type": "string", "maxLength": 256},
                "name": {"type": "string", "maxLength": 256},
                "password": {"type": "string", "maxLength": 128},
                "position": {"type": "string", "maxLength": 32}
            }
        },
        "handler.navigateRequest": {
            "type": "object",
            "required": ["view"],
            "properties": {"view": {"type": "string", "maxLength": 64}}
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "nav_items": {"type": "array", "items": {"$ref": "#/definitions/domain.NavItem"}},
                "session": {"$ref": "#/definitions/domain.Session"}
            }
        },
        "handler.openSessionResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "nav_items": {"type": "array", "items": {"$ref": "#/definitions/domain.NavItem"}},
                "session": {"$ref": "#/definitions/domain.Session"},
                "token": {"type": "string"}
            }
        },
        "handler.navResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.NavItem"}},
                "role": {"type": "string"}
            }
        },
        "handler.summaryResponse": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "status": {"type": "string"},
                "text": {"type": "string"}
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
	Title:            "WMS Console API",
	Description:      "Role-gated warehouse management console: sessions, navigation and dashboard summary.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
