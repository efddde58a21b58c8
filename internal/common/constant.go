package common

// AuthTokenHeaderName is the HTTP header used to carry the access token on
// protected requests.
const AuthTokenHeaderName = "x-auth-token"
