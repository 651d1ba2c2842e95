// Package docs holds the Swagger specification served at /swagger.
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
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in and receive a JWT",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/assignments/bulk": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Assignments"],
                "summary": "Assign several workers to a project for one date",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation or conflict"}, "404": {"description": "Project not found"}}
            }
        },
        "/assignments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Assignments"],
                "summary": "List assignments with resolved names",
                "parameters": [{"name": "projectId", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/assignments/available": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Assignments"],
                "summary": "Workers without an assignment on a date",
                "parameters": [{"name": "date", "in": "query", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Date missing"}}
            }
        },
        "/assignments/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Assignments"],
                "summary": "Update one assignment",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Conflict"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Assignments"],
                "summary": "Delete one assignment",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/employees": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "List employees",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "Create an employee",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/employees/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "Bulk import employees from an xlsx upload",
                "consumes": ["multipart/form-data"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad file"}}
            }
        },
        "/employees/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "Get one employee",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "Update one employee",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Employees"],
                "summary": "Delete one employee",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/roles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Roles"],
                "summary": "List roles with permissions",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Roles"],
                "summary": "Create a role",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/permissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Roles"],
                "summary": "List permissions",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Roles"],
                "summary": "Create a permission",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/master/trades": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Master"],
                "summary": "List trades",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/master/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Master"],
                "summary": "List company users by role",
                "parameters": [{"name": "role", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/vehicles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Master"],
                "summary": "List vehicles",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Workforce API",
	Description:      "API for assigning workers to projects, managing employees, roles and master data",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
