package rest

const (
	// auth
	RouteLogin      = "/login"
	RouteLogout     = "/logout"
	RouteCheckLogin = "/api/check_login"

	// users
	RouteUsers       = "/api/users"
	RouteUserPage    = "/users/:user_id"
	RouteUserPicture = "/api/users/:user_id/picture"
	RouteImage       = "/image/:image"

	// files
	RouteFiles      = "/api/files"
	RouteFile       = "/api/files/:file_id"
	RouteUploadFile = "/api/uploadfile"
	RouteFileDetail = "/file/:file_id"
	RouteMyFiles    = "/api/myfiles/:user_id"

	// votes
	RouteLike   = "/api/like/:user_id/:file_id"
	RouteUnlike = "/api/unlike/:user_id/:file_id"

	// ops
	RouteHealth  = "/api/healthz"
	RouteMetrics = "/api/metrics"
)
