// Package docs registers the swagger document served under /api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ids": {
            "get": {
                "tags": ["content"],
                "summary": "List all content ids",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/users/ids": {
            "get": {
                "tags": ["users"],
                "summary": "List all user ids",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/trending/daily": {
            "get": {
                "tags": ["content"],
                "summary": "Top 10 trending content by score",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TrendingEntry"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/{id}": {
            "get": {
                "tags": ["content"],
                "summary": "Content metadata (cached for one hour)",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ContentMetadata"}},
                    "404": {"description": "Content not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/{id}/reviews": {
            "get": {
                "tags": ["reviews"],
                "summary": "Reviews for content",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Review"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            },
            "post": {
                "tags": ["reviews"],
                "summary": "Add a review",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "User ID and rating are required", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/{id}/details": {
            "get": {
                "tags": ["content"],
                "summary": "Metadata, reviews and live view count",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ContentDetails"}},
                    "404": {"description": "Content not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/{id}/cast": {
            "get": {
                "tags": ["content"],
                "summary": "Cast and crew for content",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CastMember"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        },
        "/{id}/views/increment": {
            "post": {
                "tags": ["content"],
                "summary": "Increment the view counter in the background",
                "produces": ["text/plain"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "View count incremented", "schema": {"type": "string"}}
                }
            }
        },
        "/users/{userId}/watch-history": {
            "get": {
                "tags": ["users"],
                "summary": "Ten most recent watch history rows",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WatchHistoryRow"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ServerError"}}
                }
            }
        }
    },
    "definitions": {
        "ContentMetadata": {
            "type": "object",
            "properties": {
                "content_id": {"type": "string"},
                "title": {"type": "string"},
                "original_title": {"type": "string"},
                "release_date": {"type": "string", "format": "date-time"},
                "content_type": {"type": "string", "enum": ["movie", "series", "documentary"]},
                "summary": {"type": "string"},
                "rating": {"type": "number"}
            }
        },
        "CastMember": {
            "type": "object",
            "properties": {
                "character_name": {"type": "string"},
                "person_id": {"type": "string"},
                "person_name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "Reply": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user_id": {"type": "string"},
                "comment": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "Review": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "content_id": {"type": "string"},
                "user_id": {"type": "string"},
                "rating": {"type": "number", "minimum": 1, "maximum": 10},
                "comment": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "is_spoiler": {"type": "boolean"},
                "likes_count": {"type": "integer"},
                "replies": {"type": "array", "items": {"$ref": "#/definitions/Reply"}}
            }
        },
        "AddReviewRequest": {
            "type": "object",
            "required": ["user_id", "rating"],
            "properties": {
                "user_id": {"type": "string"},
                "rating": {"type": "number", "minimum": 1, "maximum": 10},
                "comment": {"type": "string"}
            }
        },
        "ContentDetails": {
            "type": "object",
            "properties": {
                "metadata": {"$ref": "#/definitions/ContentMetadata"},
                "reviews": {"type": "array", "items": {"$ref": "#/definitions/Review"}},
                "real_time_views": {"type": "integer"}
            }
        },
        "TrendingEntry": {
            "type": "object",
            "properties": {
                "content_id": {"type": "string"},
                "views": {"type": "integer"}
            }
        },
        "WatchHistoryRow": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "title": {"type": "string"},
                "watched_at": {"type": "string", "format": "date-time"},
                "duration_watched_seconds": {"type": "integer"}
            }
        },
        "Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "ServerError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1/content",
	Schemes:          []string{},
	Title:            "Streaming Metadata Service API",
	Description:      "Aggregates content metadata, reviews, watch history and real-time views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
