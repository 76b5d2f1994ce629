// Package owm is a client for the OpenWeatherMap web service.
//
// A Client owns one HTTP transport per service area (weather, pollution,
// history, misc). Each transport is bound to the area's base URL and to the
// query parameters derived from the client settings: appid on every area and,
// on the weather area only, units, lang and type. Changing a setting rebuilds
// the transports it affects under the client lock, so the next request always
// carries the new configuration and no request observes half of an update.
//
// Endpoint methods are synchronous: build the query from a Location and the
// method's options, issue one GET, and decode the JSON body. A non-2xx status
// yields an *errors.AppError of type API_ERROR carrying the status code and
// message. A 2xx status with an empty body yields an empty model, not an error.
// Transport faults are returned wrapped, never translated.
package owm
