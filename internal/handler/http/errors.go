// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Outward-facing response strings. Clients match on these exact values, so
// they are frozen here rather than derived from internal error text.
const (
	msgUpAndRunning   = "Up and running"
	msgTokenValid     = "API token is valid"
	msgLoggedOut      = "Successfully logged out"
	msgUserUpdated    = "User has been updated"
	msgUserDeleted    = "User has been deleted"
	msgNewAPIKey      = "New API key has been generated, be sure to save this now. It cannot be recovered once lost!"

	msgMissingAuthHeader   = "Missing or invalid Authorization header"
	msgValidTokenRequired  = "A valid authorization token is required"
	msgInactiveAccount     = "Inactive account"
	msgInternalServerError = "Internal server error"

	msgTokenMalformed = "Invalid token"
	msgTokenExpired   = "Token has expired"
	msgTokenRevoked   = "Token has been revoked"

	msgForbidden = "You don't have the permission to access the requested resource. " +
		"It is either read-protected or not readable by the server."
	msgNotFound = "The requested URL was not found on the server. " +
		"If you entered the URL manually please check your spelling and try again."

	msgMissingParameters = "Missing required parameters"
	msgInvalidEmail      = "Invalid email format"
	msgUserExists        = "user already exists"
	msgEmailExists       = "Email already exists"
	msgUserNotFound      = "User not found!"
	msgCouldNotProcess   = "Could not process your request"
)
