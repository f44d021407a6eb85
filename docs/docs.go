// Package docs registers the OpenAPI description of the mock dashboard API
// with swag so echo-swagger can serve it at /swagger/*.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/domain.LoginResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/domain.LoginResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current admin",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CurrentAdminResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardStats"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}
                }
            }
        },
        "/admins": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "List admins", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Create an admin (super_admin, admin)", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}
        },
        "/admins/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Get an admin", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Update an admin (super_admin, admin)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admins"], "summary": "Delete an admin (super_admin, admin)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/drivers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["drivers"], "summary": "List drivers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["drivers"], "summary": "Register a driver", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/drivers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["drivers"], "summary": "Get a driver", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["drivers"], "summary": "Update a driver", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["drivers"], "summary": "Delete a driver", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/passengers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["passengers"], "summary": "List passengers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["passengers"], "summary": "Register a passenger", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/passengers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["passengers"], "summary": "Get a passenger", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["passengers"], "summary": "Update a passenger", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["passengers"], "summary": "Delete a passenger", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/rides": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["rides"], "summary": "List rides", "responses": {"200": {"description": "OK"}}}
        },
        "/rides/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["rides"], "summary": "Get a ride", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/feedbacks": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["feedbacks"], "summary": "List feedbacks", "responses": {"200": {"description": "OK"}}}
        },
        "/feedbacks/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["feedbacks"], "summary": "Get a feedback", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "domain.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.LoginResponse": {
            "type": "object",
            "properties": {
                "admin": {"$ref": "#/definitions/domain.Admin"},
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "domain.CurrentAdminResponse": {
            "type": "object",
            "properties": {
                "admin": {"$ref": "#/definitions/domain.Admin"},
                "success": {"type": "boolean"}
            }
        },
        "domain.Admin": {
            "type": "object",
            "properties": {
                "admin_id": {"type": "integer"},
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "phone_number": {"type": "string"},
                "role": {"type": "string", "enum": ["super_admin", "admin", "moderator"]},
                "is_active": {"type": "integer"},
                "registered_at": {"type": "string"},
                "last_login_at": {"type": "string"}
            }
        },
        "domain.DashboardStats": {
            "type": "object",
            "properties": {
                "totalPassengers": {"type": "integer"},
                "totalDrivers": {"type": "integer"},
                "totalRides": {"type": "integer"},
                "totalAdmins": {"type": "integer"},
                "todayRides": {"type": "integer"},
                "activeDrivers": {"type": "integer"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
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
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Commuter Security Dashboard API",
	Description:      "Mock REST API backing the Commuter Security admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
