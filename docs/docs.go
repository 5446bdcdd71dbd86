package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "VoiceDesk assistant backend: todos, reminders and calendar entries behind voice tool-call endpoints",
        "title": "VoiceDesk API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
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
        "/create_todo/": {
            "post": {
                "tags": ["Todos"],
                "summary": "Create Todo",
                "description": "Tool-call envelope with function create_todo; arguments require title, optional description",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "envelope",
                        "description": "Tool-call envelope",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Envelope"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Result envelope with the created todo"
                    },
                    "400": {
                        "description": "InvalidRequest, MalformedArguments or MissingField"
                    }
                }
            }
        },
        "/get_todos/": {
            "post": {
                "tags": ["Todos"],
                "summary": "List Todos",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with all todos"}
                }
            }
        },
        "/complete_todo/": {
            "post": {
                "tags": ["Todos"],
                "summary": "Complete Todo",
                "description": "Requires id; completing twice is idempotent",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with the updated todo"},
                    "404": {"description": "NotFound"}
                }
            }
        },
        "/delete_todo/": {
            "post": {
                "tags": ["Todos"],
                "summary": "Delete Todo",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with deletion marker"},
                    "404": {"description": "NotFound"}
                }
            }
        },
        "/add_reminder/": {
            "post": {
                "tags": ["Reminders"],
                "summary": "Add Reminder",
                "description": "Requires reminder_text and importance",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with the created reminder"},
                    "400": {"description": "MissingField"}
                }
            }
        },
        "/get_reminders/": {
            "post": {
                "tags": ["Reminders"],
                "summary": "List Reminders",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with all reminders"}
                }
            }
        },
        "/delete_reminder/": {
            "post": {
                "tags": ["Reminders"],
                "summary": "Delete Reminder",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with deletion marker"},
                    "404": {"description": "NotFound"}
                }
            }
        },
        "/add_calendar_entry/": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Add Calendar Entry",
                "description": "Requires title, description and ISO-8601 event_from/event_to",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with the created entry"},
                    "400": {"description": "MissingField or InvalidDateFormat"}
                }
            }
        },
        "/get_calendar_entries/": {
            "post": {
                "tags": ["Calendar"],
                "summary": "List Calendar Entries",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with all entries"}
                }
            }
        },
        "/delete_calendar_entry/": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Delete Calendar Entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "envelope", "required": true, "schema": {"$ref": "#/definitions/Envelope"}}
                ],
                "responses": {
                    "200": {"description": "Result envelope with deletion marker"},
                    "404": {"description": "NotFound"}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {
                    "type": "object",
                    "required": ["toolCalls"],
                    "properties": {
                        "toolCalls": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {
                                    "id": {"type": "string"},
                                    "type": {"type": "string"},
                                    "function": {
                                        "type": "object",
                                        "properties": {
                                            "name": {"type": "string"},
                                            "arguments": {"type": "object"}
                                        }
                                    }
                                }
                            }
                        }
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "VoiceDesk API",
	Description:      "VoiceDesk assistant backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
