// Package docs holds the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/v1/workspaces": {
            "post": {
                "produces": ["application/json"],
                "tags": ["workspace"],
                "summary": "Open a workspace",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createWorkspaceResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/workspace": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workspace"],
                "summary": "Workspace snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/state.Snapshot"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign in",
                "parameters": [{"description": "Sign-in form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signInRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.signInResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/filters": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Set one filter",
                "parameters": [{"description": "Exactly one filter field", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateFiltersRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.filtersResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/search": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Issue a search",
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.searchAcceptedResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/home": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workspace"],
                "summary": "Go home",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.Snapshot"}}}
            }
        },
        "/v1/selection": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["selection"],
                "summary": "Open a competition's details",
                "parameters": [{"description": "Competition to show", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Competition"}}],
                "responses": {"204": {"description": "No Content"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["selection"],
                "summary": "Close the details view",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/shell": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shell"],
                "summary": "Change shell flags",
                "parameters": [{"description": "Flags to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateShellRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/state.Shell"}}}
            }
        },
        "/v1/navigation": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shell"],
                "summary": "Follow a side panel item",
                "parameters": [{"description": "Menu item key", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.navigateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.NavigationResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Form options",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.catalogResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.createWorkspaceResponse": {"type": "object", "properties": {"workspaceId": {"type": "string"}, "token": {"type": "string"}, "expiresAt": {"type": "string"}}},
        "handler.signInRequest": {
            "type": "object",
            "required": ["email", "mode"],
            "properties": {
                "mode": {"type": "string", "enum": ["login", "register"]},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["candidate", "organizer"]},
                "institution": {"type": "string"}
            }
        },
        "handler.signInResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/domain.User"}}},
        "handler.updateFiltersRequest": {"type": "object", "properties": {"country": {"type": "string"}, "state": {"type": "string"}, "field": {"type": "string"}, "level": {"type": "string"}}},
        "handler.filtersResponse": {"type": "object", "properties": {"filters": {"$ref": "#/definitions/domain.SearchFilters"}}},
        "handler.searchAcceptedResponse": {"type": "object", "properties": {"seq": {"type": "integer"}, "status": {"type": "string"}, "filters": {"$ref": "#/definitions/domain.SearchFilters"}}},
        "handler.updateShellRequest": {"type": "object", "properties": {"sidePanelOpen": {"type": "boolean"}, "authModalOpen": {"type": "boolean"}, "toggleTheme": {"type": "boolean"}}},
        "handler.navigateRequest": {"type": "object", "required": ["item"], "properties": {"item": {"type": "string"}}},
        "handler.catalogResponse": {
            "type": "object",
            "properties": {
                "countries": {"type": "array", "items": {"type": "string"}},
                "states": {"type": "array", "items": {"type": "string"}},
                "fields": {"type": "array", "items": {"type": "string"}},
                "levels": {"type": "array", "items": {"type": "string"}},
                "roles": {"type": "array", "items": {"type": "string"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}},
                "menu": {"type": "array", "items": {"$ref": "#/definitions/domain.MenuItem"}}
            }
        },
        "domain.User": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "institution": {"type": "string"}}},
        "domain.SearchFilters": {"type": "object", "properties": {"country": {"type": "string"}, "state": {"type": "string"}, "field": {"type": "string"}, "level": {"type": "string"}}},
        "domain.Competition": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "organizer": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "field": {"type": "string"},
                "deadline": {"type": "string"},
                "eligibility": {"type": "string"},
                "websiteUrl": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "imageKeyword": {"type": "string"},
                "imageUrl": {"type": "string"}
            }
        },
        "domain.Category": {"type": "object", "properties": {"title": {"type": "string"}, "icon": {"type": "string"}, "description": {"type": "string"}}},
        "domain.MenuItem": {"type": "object", "properties": {"key": {"type": "string"}, "label": {"type": "string"}, "guestAllowed": {"type": "boolean"}}},
        "ports.NavigationResult": {"type": "object", "properties": {"item": {"$ref": "#/definitions/domain.MenuItem"}, "navigated": {"type": "boolean"}, "authRequired": {"type": "boolean"}}},
        "state.Shell": {"type": "object", "properties": {"sidePanelOpen": {"type": "boolean"}, "authModalOpen": {"type": "boolean"}, "theme": {"type": "string", "enum": ["light", "dark"]}}},
        "state.Snapshot": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"},
                "hero": {"type": "string", "enum": ["auth_form", "search_form"]},
                "filters": {"$ref": "#/definitions/domain.SearchFilters"},
                "view": {
                    "type": "object",
                    "properties": {
                        "status": {"type": "string", "enum": ["idle", "searching", "populated", "empty", "failed"]},
                        "affordance": {"type": "string"},
                        "results": {"type": "array", "items": {"$ref": "#/definitions/domain.Competition"}},
                        "failure": {"type": "string"},
                        "showDisclaimer": {"type": "boolean"}
                    }
                },
                "selection": {"$ref": "#/definitions/domain.Competition"},
                "shell": {"$ref": "#/definitions/state.Shell"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CompeteConnect API",
	Description:      "Competition discovery for students: demo sessions, filters and generated competition listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
