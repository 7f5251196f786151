package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/http/controller"
	middlewares "github.com/Jeremi16/synify-be/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles := middlewares.NewMiddlewares(ctrl)

	r.Use(middles.CORSMiddleware)

	r.GET("/healthz", ctrl.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/google", ctrl.Login)

		// Public catalog.
		api.GET("/artists", ctrl.ListArtists)
		api.GET("/artists/:id", ctrl.GetArtist)
		api.GET("/albums", ctrl.ListAlbums)
		api.GET("/albums/:id", ctrl.GetAlbum)
		api.GET("/songs", ctrl.ListSongs)
		api.GET("/songs/featured", ctrl.FeaturedSongs)
		api.GET("/songs/trending", ctrl.TrendingSongs)
		api.GET("/songs/:id", ctrl.GetSong)

		// Streaming attributes playback when a session is present.
		api.GET("/songs/:id/stream", middles.OptionalAuthMiddleware, ctrl.StreamSong)

		authed := api.Group("")
		{
			authed.Use(middles.AuthMiddleware)

			authed.GET("/auth/me", ctrl.Me)
			authed.GET("/me/history", ctrl.MyHistory)

			authed.POST("/playlists", ctrl.CreatePlaylist)
			authed.GET("/playlists", ctrl.ListMyPlaylists)
			authed.GET("/playlists/:id", ctrl.GetPlaylist)
			authed.PUT("/playlists/:id", ctrl.UpdatePlaylist)
			authed.DELETE("/playlists/:id", ctrl.DeletePlaylist)
			authed.POST("/playlists/:id/songs", ctrl.AddPlaylistSong)
			authed.DELETE("/playlists/:id/songs/:song_id", ctrl.RemovePlaylistSong)
		}

		admin := api.Group("/admin")
		{
			admin.Use(middles.AuthMiddleware, middles.AdminMiddleware)

			admin.POST("/artists", ctrl.CreateArtist)
			admin.PUT("/artists/:id", ctrl.UpdateArtist)
			admin.DELETE("/artists/:id", ctrl.DeleteArtist)

			admin.POST("/albums", ctrl.CreateAlbum)
			admin.PUT("/albums/:id", ctrl.UpdateAlbum)
			admin.DELETE("/albums/:id", ctrl.DeleteAlbum)

			admin.POST("/songs", ctrl.CreateSong)
			admin.PUT("/songs/:id", ctrl.UpdateSong)
			admin.DELETE("/songs/:id", ctrl.DeleteSong)
			admin.POST("/ingest", ctrl.IngestSong)

			admin.POST("/uploads/sign", ctrl.SignUpload)
			admin.GET("/storage/objects/exists", ctrl.ObjectExists)
		}
	}

	return r
}
