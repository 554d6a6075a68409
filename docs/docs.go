// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/health": {"get": {"produces": ["application/json"], "summary": "Backend reachability", "responses": {"200": {"description": "ok"}, "503": {"description": "unavailable"}}}},
        "/auth/register": {"post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Register a new member", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}], "responses": {"201": {"description": "Registered and signed in"}, "403": {"description": "Invalid special code"}, "409": {"description": "Email already exists"}}}},
        "/auth/login": {"post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "User login", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}], "responses": {"200": {"description": "Login successful"}, "401": {"description": "Invalid credentials"}}}},
        "/auth/profile": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["auth"], "summary": "Profile of the signed-in member", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/home": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "Home page", "responses": {"200": {"description": "OK"}}}},
        "/events": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "Events page", "responses": {"200": {"description": "OK"}}}},
        "/gallery": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "Gallery page", "responses": {"200": {"description": "OK"}}}},
        "/team": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "Team page", "responses": {"200": {"description": "OK"}}}},
        "/about": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "About page", "responses": {"200": {"description": "OK"}}}},
        "/resources": {"get": {"produces": ["application/json"], "tags": ["portal"], "summary": "Resources page", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/admin": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["admin"], "summary": "List admin tabs", "responses": {"200": {"description": "OK"}, "403": {"description": "Admin role required"}}}},
        "/admin/notifications/ws": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin", "websocket"], "summary": "Stream admin notifications", "parameters": [{"type": "string", "name": "token", "in": "query", "description": "Access token for clients that cannot set headers"}], "responses": {"101": {"description": "Switching Protocols to WebSocket"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}}},
        "/admin/events": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create event",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.Event"}}],
                "responses": {"201": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/events/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update event",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.Event"}}],
                "responses": {"200": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/team": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create team member",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.TeamMember"}}],
                "responses": {"201": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/team/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update team member",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.TeamMember"}}],
                "responses": {"200": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/about": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create about section",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.ClubInfo"}}],
                "responses": {"201": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/about/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update about section",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.ClubInfo"}}],
                "responses": {"200": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/resources": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Upload resource file",
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}, {"type": "string", "name": "title", "in": "formData", "required": true}, {"type": "string", "name": "description", "in": "formData"}],
                "responses": {"201": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/resources/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update resource file metadata",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.Upload"}}],
                "responses": {"200": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/gallery": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Upload gallery image",
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}, {"type": "string", "name": "title", "in": "formData", "required": true}, {"type": "string", "name": "description", "in": "formData"}],
                "responses": {"201": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/gallery/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update gallery image metadata",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/forms.Upload"}}],
                "responses": {"200": {"description": "Re-listed screen with notifications"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Admin role required"}}
            }
        },
        "/admin/{tab}": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["admin"], "summary": "Open an admin tab", "parameters": [{"type": "string", "name": "tab", "in": "path", "required": true, "enum": ["events", "resources", "gallery", "team", "about"]}], "responses": {"200": {"description": "OK"}, "403": {"description": "Admin role required"}, "404": {"description": "Unknown tab"}}}},
        "/admin/{tab}/{id}/edit": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["admin"], "summary": "Open a record in edit mode", "parameters": [{"type": "string", "name": "tab", "in": "path", "required": true, "enum": ["events", "resources", "gallery", "team", "about"]}, {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Screen with the pre-populated form"}, "404": {"description": "Unknown tab or record"}}}},
        "/admin/{tab}/{id}": {"delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["admin"], "summary": "Delete a record", "parameters": [{"type": "string", "name": "tab", "in": "path", "required": true, "enum": ["events", "resources", "gallery", "team", "about"]}, {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "confirm", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Confirmation required"}, "404": {"description": "Record not found"}}}}
    },
    "definitions": {
        "dto.RegisterRequest": {"type": "object", "required": ["email", "password", "name"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"}, "phone": {"type": "string"}, "specialCode": {"type": "string"}}},
        "dto.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "forms.Event": {"type": "object", "required": ["title", "description", "eventDate"], "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "eventDate": {"type": "string"}, "location": {"type": "string"}, "registrationLink": {"type": "string"}, "registrationOpenDate": {"type": "string"}, "registrationCloseDate": {"type": "string"}}},
        "forms.TeamMember": {"type": "object", "required": ["name", "role"], "properties": {"name": {"type": "string"}, "role": {"type": "string"}, "contact": {"type": "string"}, "photoUrl": {"type": "string"}}},
        "forms.ClubInfo": {"type": "object", "required": ["section", "title", "description"], "properties": {"section": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}}},
        "forms.Upload": {"type": "object", "required": ["title"], "properties": {"title": {"type": "string"}, "description": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Club Portal API",
	Description:      "Public pages and admin panel API for the club portal",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
