// Package docs holds the swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "REST API behind the ayurveda catalog website and its admin panel: product CRUD, the singleton business profile, image upload, and single-admin bearer-token authentication.",
        "title": "Ayurveda Catalog API",
        "version": "1.0.0"
    },
    "host": "localhost:3000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "Server is healthy"}
                }
            }
        },
        "/api/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List Products",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Product array in catalog order"},
                    "500": {"description": "Storage failure"}
                }
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create Product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "product",
                        "description": "Product to create; the server assigns the id",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string", "example": "Ashwagandha Capsules"},
                                "description": {"type": "string"},
                                "price": {"type": "string", "example": "₹450"},
                                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                                "image": {"type": "string", "x-nullable": true}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created product with assigned id"},
                    "401": {"description": "Missing or invalid token"},
                    "500": {"description": "Storage failure"}
                }
            },
            "put": {
                "tags": ["Products"],
                "summary": "Replace Product (id in body)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "product",
                        "description": "Full product record including id",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Updated product"},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get Product",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Product"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage failure"}
                }
            },
            "delete": {
                "tags": ["Products"],
                "summary": "Delete Product",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deletion confirmation message"},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/api/upload": {
            "post": {
                "tags": ["Upload"],
                "summary": "Upload Image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "formData", "name": "image", "type": "file", "required": true, "description": "Image file, max 5 MB"}
                ],
                "responses": {
                    "200": {"description": "imageUrl of the stored file"},
                    "400": {"description": "Missing, oversized, or non-image file"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/api/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get Profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Business profile (default on fresh install)"},
                    "500": {"description": "Storage failure"}
                }
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Replace Profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "profile",
                        "description": "Complete profile record; replaces the stored one wholesale",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Stored profile"},
                    "401": {"description": "Missing or invalid token"},
                    "500": {"description": "Storage failure"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "password": {"type": "string", "example": "admin123"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Bearer token"},
                    "401": {"description": "Invalid password"}
                }
            }
        },
        "/api/auth/verify": {
            "get": {
                "tags": ["Auth"],
                "summary": "Verify Token",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Token is valid"},
                    "401": {"description": "Missing, invalid, expired, or revoked token"}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Logout (best-effort token revocation)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Logged out"}
                }
            }
        },
        "/api/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Change Admin Password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "passwords",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "currentPassword": {"type": "string"},
                                "newPassword": {"type": "string", "minLength": 8},
                                "confirmPassword": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Password changed; log in again"},
                    "400": {"description": "Policy violation or mismatched confirmation"},
                    "401": {"description": "Wrong current password or invalid token"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the token from /api/auth/login"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Ayurveda Catalog API",
	Description:      "REST API behind the ayurveda catalog website and its admin panel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
