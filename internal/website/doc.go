// Package website renders the movie collection as a single static HTML page.
//
// Render is pure: the same Page yields byte-identical output. All
// user-supplied text passes through html/template contextual escaping, so a
// title such as "<b>X</b>" appears literally. Generator combines the catalog
// listing with Render and writes <website_dir>/<name>.html next to the
// bundled stylesheet.
package website
