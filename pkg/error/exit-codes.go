/*
Copyright © 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// provides a custom error interface and exit codes to use on the consolehelper cli
package error

//
// Provided exit codes for consolehelper

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE
//
// Usage errors share code 1

// Wrong number of arguments for an option
const InvalidArgumentCount = 1

// Option name not recognized
const UnknownOption = 1

// Argument could not be parsed
const InvalidArgument = 1

// Cursor position outside of the visible console window
const CursorOutOfBounds = 2

// Error querying the console screen buffer
const ConsoleQueryFailed = 3

// Error acquiring a console handle
const ConsoleAcquire = 4

// Error setting the console cursor position
const ConsoleSetCursor = 5

// Error reading the configuration
const ReadingConfig = 6

// Unknown error
const Unknown int = 255
