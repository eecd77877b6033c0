// Package api exposes one navigation session and the stateless routing
// queries over HTTP for the presentation layer, using gin.
//
// The session is a single navigator.Navigator guarded by a mutex; requests
// that mutate it are serialized. Routing outcomes such as "unreachable" are
// 200 responses carrying a status; invalid positions are 422, unknown booths
// and cameras 404, malformed bodies 400, and out-of-order navigation calls 409.
package api
