// Package docs registers the OpenAPI description served under /swagger/.
// Keep it in sync with the swag annotations on the controllers.
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
		"/events/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Get an event",
				"parameters": [
					{
						"type": "string",
						"description": "Event identifier, e.g. 20170214-jigsaw",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.EventSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				},
				"description": "Returns the event document with its talk identifiers in document order."
			}
		},
		"/events/{id}/talks": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "List an event's talks",
				"parameters": [
					{
						"type": "string",
						"description": "Event identifier",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.TalksSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				},
				"description": "Resolves the event's talk identifiers in order. Identifiers without a talk document are skipped."
			}
		},
		"/speakers/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"speakers"
				],
				"summary": "Get a speaker",
				"parameters": [
					{
						"type": "string",
						"description": "Speaker identifier, e.g. forax-remi",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.SpeakerSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/speakers/{id}/talks": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"speakers"
				],
				"summary": "List a speaker's talks",
				"parameters": [
					{
						"type": "string",
						"description": "Speaker identifier",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.TalksSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/sponsors/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"sponsors"
				],
				"summary": "Get a sponsor",
				"parameters": [
					{
						"type": "string",
						"description": "Sponsor identifier, e.g. arolla",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.SponsorSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		},
		"/talks/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"talks"
				],
				"summary": "Get a talk",
				"parameters": [
					{
						"type": "string",
						"description": "Talk identifier",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/controllers.TalkSuccessResponse"
						}
					},
					"400": {
						"description": "error.code: bad_request",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"404": {
						"description": "error.code: not_found",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					},
					"500": {
						"description": "error.code: internal_error",
						"schema": {
							"$ref": "#/definitions/helpers.APIResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"controllers.EventSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.Event"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.SpeakerSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.Speaker"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.SponsorSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.Sponsor"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.TalkSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/domain.Talk"
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"controllers.TalksSuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Talk"
					}
				},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		},
		"domain.Event": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"talks": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"title": {
					"type": "string"
				}
			}
		},
		"domain.Speaker": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"first_name": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"talks": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.Sponsor": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"type": {
					"$ref": "#/definitions/domain.SponsorType"
				}
			}
		},
		"domain.SponsorType": {
			"type": "string",
			"enum": [
				"PLATINE",
				"GOLD",
				"SILVER",
				"BRONZE"
			],
			"x-enum-varnames": [
				"SponsorPlatine",
				"SponsorGold",
				"SponsorSilver",
				"SponsorBronze"
			]
		},
		"domain.Talk": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"helpers.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"helpers.APIResponse": {
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/helpers.APIError"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "jugsite content API",
	Description:      "Read-only access to events, speakers, talks and sponsors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
