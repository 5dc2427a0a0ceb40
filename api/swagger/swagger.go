package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Scheduler API",
        "description": "Exam timetable scheduling and hall allocation gateway",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    }
                }
            }
        },
        "/config": {
            "post": {
                "summary": "Store the scheduling and hall-fleet configuration",
                "tags": ["Config"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/dto.ConfigRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConfigResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "get": {
                "summary": "Read the current stored configuration",
                "tags": ["Config"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConfigResponse"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "summary": "List the subjects known to the current configuration",
                "tags": ["Config"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubjectsResponse"}}
                }
            }
        },
        "/groups": {
            "post": {
                "summary": "Add a student group to the current configuration",
                "tags": ["Config"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/dto.StudentGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/groups/{name}": {
            "delete": {
                "summary": "Remove a student group by name",
                "tags": ["Config"],
                "parameters": [
                    {"in": "path", "name": "name", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generate": {
            "post": {
                "summary": "Solve a timetable and hall allocation for the given configuration",
                "tags": ["Generate"],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/dto.GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/export/csv": {
            "get": {
                "summary": "Export the last generated result as CSV",
                "tags": ["Export"],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/export/pdf": {
            "get": {
                "summary": "Export the last generated result as a PDF document",
                "tags": ["Export"],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.StudentGroupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "size": {"type": "integer"}
            }
        },
        "dto.HallRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "capacity": {"type": "integer"}
            }
        },
        "dto.TimetableConfigRequest": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}},
                "groups": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentGroupRequest"}},
                "days": {"type": "integer"},
                "slotsPerDay": {"type": "integer"},
                "randomSeed": {"type": "integer"}
            }
        },
        "dto.HallConfigRequest": {
            "type": "object",
            "properties": {
                "halls": {"type": "array", "items": {"$ref": "#/definitions/dto.HallRequest"}},
                "perSubjectLimit": {"type": "integer"}
            }
        },
        "dto.ConfigRequest": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}},
                "groups": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentGroupRequest"}},
                "days": {"type": "integer"},
                "slotsPerDay": {"type": "integer"},
                "halls": {"type": "array", "items": {"$ref": "#/definitions/dto.HallRequest"}},
                "perSubjectLimit": {"type": "integer"},
                "randomSeed": {"type": "integer"}
            }
        },
        "dto.ConfigResponse": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}},
                "groups": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentGroupRequest"}},
                "days": {"type": "integer"},
                "slotsPerDay": {"type": "integer"},
                "halls": {"type": "array", "items": {"$ref": "#/definitions/dto.HallRequest"}},
                "perSubjectLimit": {"type": "integer"},
                "randomSeed": {"type": "integer"}
            }
        },
        "dto.GenerateRequest": {
            "type": "object",
            "properties": {
                "timetableConfig": {"$ref": "#/definitions/dto.TimetableConfigRequest"},
                "hallConfig": {"$ref": "#/definitions/dto.HallConfigRequest"}
            }
        },
        "dto.SubjectsResponse": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "diagnostics": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
