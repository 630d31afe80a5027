// Package com contains the BO4E components (COM), the reusable value
// parts that business objects are composed of. Components carry the
// same envelope as business objects and register themselves with the
// engine on import, so the schema dump covers them too.
package com
