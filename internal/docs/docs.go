// Package docs registers the swagger specification served at /swagger.
// Code generated by swag init; edits should go through the handler
// annotations instead.
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
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "User created", "schema": {"type": "string"}},
                    "400": {"description": "Error creating user", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "User credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TokenResponse"}},
                    "400": {"description": "Invalid credentials", "schema": {"type": "string"}}
                }
            }
        },
        "/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh token",
                "parameters": [
                    {
                        "description": "Current token",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RefreshRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TokenResponse"}},
                    "400": {"description": "Invalid token", "schema": {"type": "string"}}
                }
            }
        },
        "/transactions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Add a transaction",
                "parameters": [
                    {
                        "description": "Transaction details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.AddTransactionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Inserted row", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Error adding transaction", "schema": {"type": "string"}}
                }
            }
        },
        "/budgets": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budgets"],
                "summary": "Set a budget",
                "parameters": [
                    {
                        "description": "Budget details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SetBudgetRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Inserted row", "schema": {"$ref": "#/definitions/models.Budget"}},
                    "400": {"description": "Error setting budget", "schema": {"type": "string"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.RefreshRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handlers.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handlers.AddTransactionRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "handlers.SetBudgetRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "category": {"type": "string"},
                "amount": {"type": "number"},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "category": {"type": "string"},
                "amount": {"type": "number"},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Personal Finance Tracker API",
	Description:      "Minimal personal-finance tracking backend: registration, login, transactions, and monthly category budgets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
