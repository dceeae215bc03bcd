// Package settings assembles layered application settings.
//
// [Assemble] decides which sources apply and appends them to a caller-owned
// [Sources] list in precedence order (later entries win):
//  1. appsettings.json in the settings directory (mandatory)
//  2. appsettings.<environment>.json for development or production
//  3. developer secrets, in development only
//  4. environment variables
//
// The environment name comes from ASPNETCORE_ENVIRONMENT, or
// DOTNET_ENVIRONMENT when the former is unset.
//
// [Load] then merges the registered sources into a [Settings] tree.
//
//	var sources settings.Sources
//	if err := settings.Assemble(&sources, settings.WithDirectory(dir)); err != nil {
//	    return err
//	}
//	s, err := settings.Load(&sources)
package settings
