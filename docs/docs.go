// Package docs registers the OpenAPI document of the presensi API with swag.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
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
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List admins",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.adminResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create an admin",
                "parameters": [
                    {"description": "Admin credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.adminRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update an admin",
                "parameters": [
                    {"type": "string", "description": "Admin id", "name": "id", "in": "path", "required": true},
                    {"description": "New credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.adminRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete an admin",
                "parameters": [
                    {"type": "string", "description": "Admin id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/jamaah": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["jamaah"],
                "summary": "List jamaah",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Jamaah"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jamaah"],
                "summary": "Register a jamaah",
                "parameters": [
                    {"description": "Jamaah details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.jamaahRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Jamaah"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/jamaah/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jamaah"],
                "summary": "Update a jamaah",
                "parameters": [
                    {"type": "string", "description": "Jamaah id", "name": "id", "in": "path", "required": true},
                    {"description": "Jamaah details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.jamaahRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Jamaah"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["jamaah"],
                "summary": "Delete a jamaah",
                "parameters": [
                    {"type": "string", "description": "Jamaah id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/kajian": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["kajian"],
                "summary": "List kajian",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Kajian"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kajian"],
                "summary": "Schedule a kajian",
                "parameters": [
                    {"description": "Kajian details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kajianRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Kajian"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/kajian/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kajian"],
                "summary": "Update a kajian",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true},
                    {"description": "Kajian details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kajianRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Kajian"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["kajian"],
                "summary": "Delete a kajian",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/kajian/{id}/public": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Kajian detail for the check-in page",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Kajian"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/kajian/{id}/qr": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png"],
                "tags": ["kajian"],
                "summary": "QR code of the check-in URL",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/presensi": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Check in to a kajian",
                "parameters": [
                    {"description": "Jamaah and kajian ids", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.presensiRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.presensiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/laporan/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["laporan"],
                "summary": "Attendance report of a kajian",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reportResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/laporan/{id}/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "tags": ["laporan"],
                "summary": "Attendance report as CSV",
                "parameters": [
                    {"type": "string", "description": "Kajian id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Jamaah": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nama": {"type": "string"},
                "hp": {"type": "string"}
            }
        },
        "domain.Kajian": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "judul": {"type": "string"},
                "tanggal": {"type": "string"},
                "jam_mulai": {"type": "string"},
                "jam_selesai": {"type": "string"}
            }
        },
        "handler.adminRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.adminResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.attendanceRowResponse": {
            "type": "object",
            "properties": {
                "nama": {"type": "string"},
                "hp": {"type": "string"},
                "waktu_presensi": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "handler.jamaahRequest": {
            "type": "object",
            "required": ["nama"],
            "properties": {
                "nama": {"type": "string"},
                "hp": {"type": "string"}
            }
        },
        "handler.kajianRequest": {
            "type": "object",
            "required": ["jam_mulai", "jam_selesai", "judul", "tanggal"],
            "properties": {
                "judul": {"type": "string"},
                "tanggal": {"type": "string", "example": "2025-03-14"},
                "jam_mulai": {"type": "string"},
                "jam_selesai": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "admin": {"$ref": "#/definitions/handler.adminResponse"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.presensiData": {
            "type": "object",
            "properties": {
                "jamaah": {"type": "string"},
                "kajian": {"type": "string"}
            }
        },
        "handler.presensiRequest": {
            "type": "object",
            "required": ["id_jamaah", "id_kajian"],
            "properties": {
                "id_jamaah": {"type": "string"},
                "id_kajian": {"type": "string"}
            }
        },
        "handler.presensiResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "reason": {"type": "string"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/handler.presensiData"}
            }
        },
        "handler.reportResponse": {
            "type": "object",
            "properties": {
                "kajian": {"$ref": "#/definitions/domain.Kajian"},
                "total_hadir": {"type": "integer"},
                "detail_kehadiran": {"type": "array", "items": {"$ref": "#/definitions/handler.attendanceRowResponse"}}
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Presensi Kajian API",
	Description:      "QR based attendance for kajian sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
