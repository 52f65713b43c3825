// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler annotations.
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
        "/collect": {
            "post": {
                "description": "Reserves the wallet's unclaimed balance and returns a treasury-signed transfer for the client to co-sign and submit.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collect"],
                "summary": "Request a reward collection",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CollectRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CollectResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.CollectConflictResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.TreasuryUnavailableResponse"}}
                }
            }
        },
        "/confirm-collect": {
            "post": {
                "description": "Clears the reservation once the transfer is confirmed on the token network.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collect"],
                "summary": "Confirm a reward collection",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ConfirmCollectRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ConfirmCollectResponse"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.ProcessingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.TransferFailedResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/save-game": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Purchase spins or record a client-drawn spin",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.SaveGameRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SaveGameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/spin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Resolve one spin server-side",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.SpinRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SpinResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/load-player": {
            "get": {
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Load a player's ledger",
                "parameters": [{"type": "string", "description": "Wallet address", "name": "walletAddress", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PlayerSnapshot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Spin history",
                "parameters": [
                    {"type": "string", "description": "Wallet address", "name": "walletAddress", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum entries (default 20, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Player leaderboard",
                "parameters": [
                    {"enum": ["spins", "won", "winRate"], "type": "string", "name": "sortBy", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Leaderboard"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/game-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Aggregate game totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.GameStats"}}
                }
            }
        },
        "/admin/recover-collects": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Recover abandoned collects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RecoveryReport"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/admin/stats/invalidate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Invalidate stats cache",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/healthz": {"get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"produces": ["application/json"], "tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/version": {"get": {"produces": ["application/json"], "tags": ["health"], "summary": "Version", "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "handler.CollectRequest": {"type": "object", "required": ["userWallet", "amount"], "properties": {"userWallet": {"type": "string"}, "amount": {"type": "number"}}},
        "handler.CollectResponse": {"type": "object", "properties": {"transaction": {"type": "string"}, "signature": {"type": "string"}, "actualAmount": {"type": "number"}}},
        "handler.CollectConflictResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "actualAmount": {"type": "number"}}},
        "handler.ConfirmCollectRequest": {"type": "object", "required": ["userWallet", "signature"], "properties": {"userWallet": {"type": "string"}, "signature": {"type": "string"}, "amount": {"type": "number"}}},
        "handler.ConfirmCollectResponse": {"type": "object", "properties": {"message": {"type": "string"}, "amount": {"type": "number"}, "alreadyCleared": {"type": "boolean"}}},
        "handler.ProcessingResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "handler.TransferFailedResponse": {"type": "object", "properties": {"error": {"type": "string"}, "transactionError": {"type": "string"}}},
        "handler.SaveGameRequest": {"type": "object", "required": ["walletAddress"], "properties": {"walletAddress": {"type": "string"}, "spinCost": {"type": "number"}, "resultSymbols": {"type": "array", "items": {"type": "integer"}}, "wonAmount": {"type": "number"}, "spinsPurchased": {"type": "integer"}}},
        "handler.SaveGameResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "spinsRemaining": {"type": "integer"}, "wonAmount": {"type": "number"}}},
        "handler.SpinRequest": {"type": "object", "required": ["walletAddress"], "properties": {"walletAddress": {"type": "string"}}},
        "handler.TreasuryUnavailableResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "treasuryAccount": {"type": "string"}, "balance": {"type": "number"}, "required": {"type": "number"}}},
        "handler.HistoryResponse": {"type": "object", "properties": {"walletAddress": {"type": "string"}, "history": {"type": "array", "items": {"$ref": "#/definitions/domain.HistoryView"}}}},
        "domain.HistoryView": {"type": "object", "properties": {"id": {"type": "string"}, "spinCost": {"type": "number"}, "resultSymbols": {"type": "array", "items": {"type": "integer"}}, "wonAmount": {"type": "number"}, "timestamp": {"type": "string"}}},
        "handler.SuccessResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}}},
        "domain.SpinResult": {"type": "object", "properties": {"walletAddress": {"type": "string"}, "symbols": {"type": "array", "items": {"type": "integer"}}, "symbolNames": {"type": "array", "items": {"type": "string"}}, "reelStops": {"type": "array", "items": {"type": "integer"}}, "stake": {"type": "number"}, "wonAmount": {"type": "number"}, "isWin": {"type": "boolean"}, "trigger": {"type": "string"}, "spinsRemaining": {"type": "integer"}}},
        "domain.PlayerSnapshot": {"type": "object", "properties": {"walletAddress": {"type": "string"}, "totalSpins": {"type": "integer"}, "totalWon": {"type": "number"}, "totalWagered": {"type": "number"}, "unclaimedRewards": {"type": "number"}, "pendingCollect": {"type": "number"}, "spinsRemaining": {"type": "integer"}, "costPerSpin": {"type": "number"}}},
        "domain.Leaderboard": {"type": "object", "properties": {"leaderboard": {"type": "array", "items": {"type": "object"}}, "sortBy": {"type": "string"}, "totalPlayers": {"type": "integer"}}},
        "domain.GameStats": {"type": "object", "properties": {"grandTotalSpins": {"type": "integer"}, "grandTotalWon": {"type": "number"}, "grandTotalWagered": {"type": "number"}, "totalPlayers": {"type": "integer"}}},
        "domain.RecoveryReport": {"type": "object", "properties": {"examined": {"type": "integer"}, "outcomes": {"type": "object", "additionalProperties": {"type": "integer"}}, "errors": {"type": "integer"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "XMA Slots API",
	Description:      "Token slot machine backend: spin ledger, reward collection and leaderboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
