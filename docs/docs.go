package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Monochrome Todo API Documentation",
        "title": "Monochrome Todo API",
        "version": "1.0"
    },
    "host": "localhost:5000",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/auth/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Create account",
                "description": "Register with email and password, returns a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Signup payload",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {
                                    "type": "string",
                                    "example": "user@example.com"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "hunter2hunter2"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created"
                    },
                    "400": {
                        "description": "Email already registered"
                    }
                }
            }
        },
        "/api/auth/signin": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in",
                "description": "Authenticate with email and password, returns a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Signin successful"
                    },
                    "400": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/api/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "description": "List all tasks owned by the caller",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Array of tasks"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {
                        "description": "Task created"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/api/theme": {
            "get": {
                "tags": ["Theme"],
                "summary": "Get theme preferences",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Theme object, or empty object when unset"
                    }
                }
            },
            "put": {
                "tags": ["Theme"],
                "summary": "Upsert theme preferences",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "Upserted theme object"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Monochrome Todo API",
	Description:      "Monochrome Todo API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
